// Package Expressions evaluates and prints arithmetic expression trees built
// with Trees. Leaves hold decimal literals or variable names, internal nodes
// hold one of the binary operators + - * /. Every internal node is expected
// to have exactly two children.
package Expressions

import (
	"regexp"
	"strconv"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Token is an element of an expression tree.
type Token string

const (
	Add Token = "+"
	Sub Token = "-"
	Mul Token = "*"
	Div Token = "/"
)

// IsOperator reports whether t is one of the supported operators.
func (t Token) IsOperator() bool {
	switch t {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}

// decimal matches an optional sign, digits with an optional fraction, and an
// optional exponent. strconv.ParseFloat also takes inf, nan, hex floats and
// underscores, none of which are number leaves here.
var decimal = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// parseLiteral parses a leaf as a decimal number. A literal too large for a
// float64 evaluates to ±Inf.
func parseLiteral(s string) (float64, error) {
	if !decimal.MatchString(s) {
		return 0, &NumberFormatError{s, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}}
	}
	v, err := strconv.ParseFloat(s, 64)
	var ne *strconv.NumError
	if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
		return v, nil
	}
	if err != nil {
		return 0, &NumberFormatError{s, err}
	}
	return v, nil
}

// Eval computes the value of the expression held by tree. Leaves are parsed
// as float64. Evaluation fails on the first leaf that isn't a number, on a
// division whose right operand is exactly 0, and on an unknown operator.
// Recursive; the tree isn't modified.
func Eval[E ~string, S constraints.Unsigned](tree Trees.BinaryTree[E, S]) (float64, error) {
	if tree.Empty() {
		return 0, ErrEmptyTree
	}
	return EvalAt(tree, tree.Root())
}

// EvalAt is Eval on the subtree rooted at p.
func EvalAt[E ~string, S constraints.Unsigned](tree Trees.BinaryTree[E, S], p Trees.Pos[E, S]) (float64, error) {
	e, err := tree.Element(p)
	if err != nil {
		return 0, errors.Wrap(err, "eval")
	}
	in, _ := tree.IsInternal(p)
	if !in {
		return parseLiteral(string(e))
	}
	l, r, err := operands(tree, p, e)
	if err != nil {
		return 0, err
	}
	lv, err := EvalAt(tree, l)
	if err != nil {
		return 0, err
	}
	rv, err := EvalAt(tree, r)
	if err != nil {
		return 0, err
	}
	switch Token(e) {
	case Add:
		return lv + rv, nil
	case Sub:
		return lv - rv, nil
	case Mul:
		return lv * rv, nil
	case Div:
		if rv == 0.0 {
			return 0, &DivisionByZeroError{lv}
		}
		return lv / rv, nil
	}
	return 0, &InvalidOperatorError{string(e)}
}

// ToExpression prints the expression held by tree, wrapping every internal
// node in parentheses and leaving leaves bare, e.g. "((2*(a-1))+(3*b))".
// Operators aren't checked. Recursive.
func ToExpression[E ~string, S constraints.Unsigned](tree Trees.BinaryTree[E, S]) (string, error) {
	if tree.Empty() {
		return "", ErrEmptyTree
	}
	return ToExpressionAt(tree, tree.Root())
}

// ToExpressionAt is ToExpression on the subtree rooted at p.
func ToExpressionAt[E ~string, S constraints.Unsigned](tree Trees.BinaryTree[E, S], p Trees.Pos[E, S]) (string, error) {
	e, err := tree.Element(p)
	if err != nil {
		return "", errors.Wrap(err, "expression")
	}
	if in, _ := tree.IsInternal(p); !in {
		return string(e), nil
	}
	l, r, err := operands(tree, p, e)
	if err != nil {
		return "", err
	}
	ls, err := ToExpressionAt(tree, l)
	if err != nil {
		return "", err
	}
	rs, err := ToExpressionAt(tree, r)
	if err != nil {
		return "", err
	}
	return "(" + ls + string(e) + rs + ")", nil
}

// operands of the internal node p holding op. A node with a single child
// is reported as an invalid argument.
func operands[E ~string, S constraints.Unsigned](tree Trees.BinaryTree[E, S], p Trees.Pos[E, S], op E) (l, r Trees.Pos[E, S], err error) {
	if l, err = tree.Left(p); err != nil {
		return
	}
	if r, err = tree.Right(p); err != nil {
		return
	}
	if l.Nil() || r.Nil() {
		err = errors.Wrapf(Trees.ErrInvalidArgument, "operator %q needs two operands", string(op))
	}
	return
}
