package Trees

import (
	"golang.org/x/exp/constraints"
	"strconv"
)

// A node in the Tree.
// p, l, r are indexes into base.ifs, 0 meaning no node. gen is odd while
// the slot holds a live node and even while it sits in the free list.
type info[S constraints.Unsigned] struct {
	p, l, r, gen S
}

type base[T any, S constraints.Unsigned] struct {
	ifs            []info[S] // ifs[0] is the nil sentinel and is never written.
	vs             []T       // vs[i] is the element of ifs[i]; vs[0] stays the zero value.
	root, free, sz S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	vs := make([]T, 1, int(hint)+1)
	return base[T, S]{ifs: ifs, vs: vs}
}

// addFree index once. The slot's element is zeroed so the tree doesn't keep it alive.
func (u *base[T, S]) addFree(a S) {
	u.vs[a] = *new(T)
	u.ifs[a] = info[S]{l: u.free, gen: u.ifs[a].gen + 1}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a live slot holding v with parent p, reusing a free slot if there is one.
func (u *base[T, S]) alloc(v T, p S) S {
	a := u.popFree()
	if a == 0 {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic("Trees: index type overflow at " + strconv.Itoa(len(u.ifs)) + " slots")
		}
		a = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
	} else {
		u.vs[a] = v
	}
	u.ifs[a] = info[S]{p: p, gen: u.ifs[a].gen + 1}
	return a
}

// live reports whether slot i holds a node.
func (u *base[T, S]) live(i S) bool {
	return i != 0 && int(i) < len(u.ifs) && u.ifs[i].gen&1 == 1
}

// Size of the tree.
func (u *base[T, S]) Size() S {
	return u.sz
}

// Empty is Size()==0.
func (u *base[T, S]) Empty() bool {
	return u.sz == 0
}

// Clear the tree. Every live slot is released so that positions handed out
// before Clear are rejected afterwards. O(number of slots).
func (u *base[T, S]) Clear() {
	for i := len(u.ifs) - 1; i > 0; i-- {
		if u.ifs[i].gen&1 == 1 {
			u.addFree(S(i))
		}
	}
	u.root, u.sz = 0, 0
}
