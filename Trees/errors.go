package Trees

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error categories. Every error returned by a Tree matches exactly one of
// them under errors.Is.
var (
	ErrState           = errors.New("invalid tree state")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NonEmptyTreeError is returned by AddRoot on a tree that already has a root.
type NonEmptyTreeError struct {
	Size uint64
}

func (e *NonEmptyTreeError) Error() string {
	return fmt.Sprintf("tree is not empty: has %d nodes", e.Size)
}

func (e *NonEmptyTreeError) Is(target error) bool {
	return target == ErrState
}

// InvalidPositionError is returned when a position can't be used with the
// tree it was passed to.
type InvalidPositionError struct {
	Op     string
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return e.Op + ": " + e.Reason
}

func (e *InvalidPositionError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ChildExistsError is returned by AddLeft and AddRight when the child slot
// is already taken.
type ChildExistsError struct {
	Side string
}

func (e *ChildExistsError) Error() string {
	return "position already has a " + e.Side + " child"
}

func (e *ChildExistsError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// TwoChildrenError is returned by Remove for a node with two children.
type TwoChildrenError struct {
}

func (e *TwoChildrenError) Error() string {
	return "cannot remove a position with two children"
}

func (e *TwoChildrenError) Is(target error) bool {
	return target == ErrInvalidArgument
}
