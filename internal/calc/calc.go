package calc

import "strings"

// Operation selects one of the four arithmetic functions.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// ParseOperation maps an external operation token to its Operation.
// Both the CLI flag spelling ("--add") and the bare name ("add") are
// accepted. Unrecognized tokens fail with UnknownOperationError; there is
// no default operation.
func ParseOperation(token string) (Operation, error) {
	switch Operation(strings.TrimPrefix(strings.TrimSpace(token), "--")) {
	case OpAdd:
		return OpAdd, nil
	case OpSubtract:
		return OpSubtract, nil
	case OpMultiply:
		return OpMultiply, nil
	case OpDivide:
		return OpDivide, nil
	default:
		return "", &UnknownOperationError{Token: token}
	}
}

// Calculate applies op to a and b. It is pure and call-scoped: no state
// survives the call, and concurrent callers need no coordination.
//
// Division by a zero divisor (including negative zero) fails with
// DivisionByZeroError rather than evaluating to an infinity. Operations
// outside the enumeration fail with UnknownOperationError.
func Calculate(a, b float64, op Operation) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, &DivisionByZeroError{Dividend: a}
		}
		return a / b, nil
	default:
		return 0, &UnknownOperationError{Token: string(op)}
	}
}
