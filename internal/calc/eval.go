package calc

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Eval evaluates a free-form arithmetic expression and requires a numeric
// result. Like Calculate it is pure and single-shot.
//
// govaluate performs float division, so a zero divisor inside an expression
// surfaces as an infinite or NaN result; Eval reports that as
// ErrDivisionByZero instead of printing the infinity.
func Eval(expression string) (float64, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return 0, &ExpressionError{Msg: err.Error(), Err: err}
	}

	result, err := expr.Evaluate(nil)
	if err != nil {
		return 0, &ExpressionError{Msg: err.Error(), Err: err}
	}

	value, ok := result.(float64)
	if !ok {
		return 0, &ExpressionError{Msg: fmt.Sprintf("result %v is not a number", result)}
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrDivisionByZero
	}
	return value, nil
}
