package calc

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrDivisionByZero indicates a divide with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation indicates an operation token outside the four
	// recognized values.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrExpression indicates a malformed or non-numeric expression.
	ErrExpression = errors.New("expression error")
)

// DivisionByZeroError reports the dividend of a rejected division.
// Wraps ErrDivisionByZero for errors.Is() compatibility.
type DivisionByZeroError struct {
	Dividend float64
}

func (e *DivisionByZeroError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: cannot divide %g by zero", ErrDivisionByZero.Error(), e.Dividend)
}

func (e *DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

// UnknownOperationError reports the token that failed operation selection.
// Wraps ErrUnknownOperation for errors.Is() compatibility.
type UnknownOperationError struct {
	Token string
}

func (e *UnknownOperationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q", ErrUnknownOperation.Error(), e.Token)
}

func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }

// ExpressionError represents a failure to parse or evaluate an expression.
// Wraps ErrExpression for errors.Is() compatibility.
type ExpressionError struct {
	Msg string // Deterministic error message
	Err error  // Optional underlying error (e.g., from govaluate)
}

func (e *ExpressionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrExpression.Error()
	}
	return fmt.Sprintf("%s: %s", ErrExpression.Error(), e.Msg)
}

func (e *ExpressionError) Unwrap() error { return ErrExpression }
