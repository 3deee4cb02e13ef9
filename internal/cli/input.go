package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"calc/internal/calc"
)

// Semantic exit codes for the calc CLI.
const (
	ExitSuccess    = 0
	ExitUsageError = 1
	ExitEvalError  = 2
)

type Mode string

const (
	ModeCalculate Mode = "calculate"
	ModeEval      Mode = "eval"
	ModeHelp      Mode = "help"
	ModeVersion   Mode = "version"
)

// Invocation is the canonical, parsed invocation.
//
// It contains exactly one active mode configuration: Op and the operands for
// ModeCalculate, Expression for ModeEval.
type Invocation struct {
	Mode       Mode
	Op         calc.Operation
	Operand1   float64
	Operand2   float64
	Expression string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitUsageError, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses argv (excluding argv[0]) into a canonical
// Invocation. Parsing is deterministic: the same args always produce the
// same Invocation, and no process state is consulted.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, invalidInvocationf("missing operation")
	}

	switch strings.TrimSpace(args[0]) {
	case "help", "-h", "--help":
		if len(args) != 1 {
			return Invocation{}, invalidInvocationf("unexpected arguments after %q: %q", args[0], strings.Join(args[1:], " "))
		}
		return Invocation{Mode: ModeHelp}, nil

	case "--version":
		if len(args) != 1 {
			return Invocation{}, invalidInvocationf("unexpected arguments after --version: %q", strings.Join(args[1:], " "))
		}
		return Invocation{Mode: ModeVersion}, nil

	case "--eval":
		if len(args) != 2 {
			return Invocation{}, invalidInvocationf("--eval takes exactly one expression argument")
		}
		expression := strings.TrimSpace(args[1])
		if expression == "" {
			return Invocation{}, invalidInvocationf("--eval expression must not be empty")
		}
		return Invocation{Mode: ModeEval, Expression: expression}, nil
	}

	if len(args) != 3 {
		return Invocation{}, invalidInvocationf("expected <operation> <operand1> <operand2>, got %d arguments", len(args))
	}

	op, err := calc.ParseOperation(args[0])
	if err != nil {
		return Invocation{}, invalidInvocationf("unknown operation %q (expected --add|--subtract|--multiply|--divide)", args[0])
	}
	operand1, err := parseOperand("operand1", args[1])
	if err != nil {
		return Invocation{}, err
	}
	operand2, err := parseOperand("operand2", args[2])
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{Mode: ModeCalculate, Op: op, Operand1: operand1, Operand2: operand2}, nil
}

func parseOperand(name, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalidInvocationf("%s: %q is not a number", name, raw)
	}
	return value, nil
}

// ExitCode extracts a semantic exit code from an error.
// nil maps to ExitSuccess; any error that is not a known invocation error
// maps to ExitEvalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitUsageError
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitEvalError
}
