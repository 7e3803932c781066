package Trees

import "golang.org/x/exp/constraints"

// BinaryTree is the read side of a positional binary tree: a tree whose
// nodes are addressed by positions handed out by the tree itself rather than
// by their values. Each node has at most a left and a right child. A node
// with no children is external (a leaf); any other node is internal.
// Methods taking a position return an error satisfying errors.Is(err,
// ErrInvalidArgument) when the position is the null position, was produced by
// another tree, or refers to a node that has since been removed. Methods
// returning a position return the null position (Pos.Nil()==true) when the
// requested node doesn't exist.
type BinaryTree[T any, S constraints.Unsigned] interface {
	//Root of the tree, or the null position if the tree is empty.
	Root() Pos[T, S]
	//Parent of p, or the null position if p is the root.
	Parent(p Pos[T, S]) (Pos[T, S], error)
	//Left child of p, or the null position if p has none.
	Left(p Pos[T, S]) (Pos[T, S], error)
	//Right child of p, or the null position if p has none.
	Right(p Pos[T, S]) (Pos[T, S], error)
	//IsInternal reports whether p has at least one child.
	IsInternal(p Pos[T, S]) (bool, error)
	//IsExternal reports whether p has no children.
	IsExternal(p Pos[T, S]) (bool, error)
	//Element stored at p.
	Element(p Pos[T, S]) (T, error)
	//Size is the number of nodes reachable from the root.
	Size() S
	//Empty is Size()==0.
	Empty() bool
}

var _ BinaryTree[int, uint] = (*Tree[int, uint])(nil)
