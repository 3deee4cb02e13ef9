package cli

import (
	"fmt"
	"io"

	"calc/internal/calc"
)

const version = "1.0.0"

const usage = `Usage: calc <operation> <operand1> <operand2>
       calc --eval <expression>

Operations:
  --add         operand1 + operand2
  --subtract    operand1 - operand2
  --multiply    operand1 * operand2
  --divide      operand1 / operand2 (fails on a zero divisor)

Flags:
  --eval        evaluate a free-form arithmetic expression
  --version     print the version and exit
  -h, --help    print this message and exit`

// Execute maps a canonical Invocation to the dispatcher.
//
// On success it writes exactly one line "Result: <value>" to stdout and
// returns ExitSuccess. Evaluation failures return ExitEvalError with the
// error; nothing is written to stdout on failure. The returned exit code is
// authoritative even when err is nil.
func Execute(inv Invocation, stdout io.Writer) (int, error) {
	switch inv.Mode {
	case ModeHelp:
		fmt.Fprintln(stdout, usage)
		return ExitSuccess, nil

	case ModeVersion:
		fmt.Fprintln(stdout, version)
		return ExitSuccess, nil

	case ModeEval:
		result, err := calc.Eval(inv.Expression)
		if err != nil {
			return ExitEvalError, err
		}
		fmt.Fprintf(stdout, "Result: %g\n", result)
		return ExitSuccess, nil

	case ModeCalculate:
		result, err := calc.Calculate(inv.Operand1, inv.Operand2, inv.Op)
		if err != nil {
			return ExitEvalError, err
		}
		fmt.Fprintf(stdout, "Result: %g\n", result)
		return ExitSuccess, nil

	default:
		return ExitUsageError, invalidInvocationf("unknown mode %q", inv.Mode)
	}
}

// Main is the canonical entrypoint for the calc CLI.
// args should exclude argv[0]. It never calls os.Exit; the caller decides
// what to do with the returned code.
func Main(args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	inv, err := ParseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return ExitCode(err)
	}

	code, err := Execute(inv, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return code
}
