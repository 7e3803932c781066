package Trees

import "golang.org/x/exp/constraints"

// Pos is a handle to a node of one specific Tree. The zero value is the null
// position. A Pos stays valid until the node it refers to is removed or the
// tree is cleared; after that every Tree method rejects it, even if the
// underlying slot has been reused by a later insertion. Staleness is detected
// through a per slot generation of type S, so with a very narrow S (uint8) a
// slot reused more than 127 times may accept a stale handle again.
type Pos[T any, S constraints.Unsigned] struct {
	t   *Tree[T, S]
	i   S
	gen S
}

// Nil reports whether p is the null position.
func (p Pos[T, S]) Nil() bool {
	return p.i == 0
}

// Valid reports whether p currently refers to a live node of its tree.
func (p Pos[T, S]) Valid() bool {
	if p.t == nil {
		return false
	}
	_, ok := p.t.valid(p)
	return ok
}
