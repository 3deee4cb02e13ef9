// Package calc implements the arithmetic core of the calc CLI.
//
// The dispatcher is a single pure function over two float64 operands and a
// closed Operation enumeration. Division by a zero divisor fails with a
// typed error instead of producing an IEEE infinity.
//
// All failure modes are categorized into distinct error types that can be
// checked programmatically using errors.Is().
package calc
