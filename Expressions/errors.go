package Expressions

import (
	"strconv"

	"github.com/pkg/errors"
)

// Error categories of Eval. Each error type below matches one of them under
// errors.Is.
var (
	ErrEmptyTree       = errors.New("empty expression tree")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrNumberFormat    = errors.New("invalid number format")
)

// DivisionByZeroError is returned when the right operand of "/" evaluates to
// exactly 0.
type DivisionByZeroError struct {
	Dividend float64
}

func (e *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(e.Dividend, 'g', -1, 64) + "/0"
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// InvalidOperatorError is returned when an internal node holds a token other
// than + - * /.
type InvalidOperatorError struct {
	Op string
}

func (e *InvalidOperatorError) Error() string {
	return "invalid operator: " + strconv.Quote(e.Op)
}

func (e *InvalidOperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}

// NumberFormatError is returned when a leaf can't be parsed as a decimal
// number, which includes variable names.
type NumberFormatError struct {
	Literal string
	Err     error
}

func (e *NumberFormatError) Error() string {
	return "leaf " + strconv.Quote(e.Literal) + " is not a number: " + e.Err.Error()
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

func (e *NumberFormatError) Is(target error) bool {
	return target == ErrNumberFormat
}
