package Trees

import (
	"iter"
	"strconv"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/bintree/Queues"
)

// Order of a traversal.
type Order byte

const (
	InOrder    Order = iota // left subtree, node, right subtree
	PreOrder                // node, left subtree, right subtree
	PostOrder               // left subtree, right subtree, node
	LevelOrder              // breadth first, left to right within a depth
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

func (u *Tree[T, S]) inOrder(i S, out []T) []T {
	if i == 0 {
		return out
	}
	out = u.inOrder(u.ifs[i].l, out)
	out = append(out, u.vs[i])
	return u.inOrder(u.ifs[i].r, out)
}

func (u *Tree[T, S]) preOrder(i S, out []T) []T {
	if i == 0 {
		return out
	}
	out = append(out, u.vs[i])
	out = u.preOrder(u.ifs[i].l, out)
	return u.preOrder(u.ifs[i].r, out)
}

func (u *Tree[T, S]) postOrder(i S, out []T) []T {
	if i == 0 {
		return out
	}
	out = u.postOrder(u.ifs[i].l, out)
	out = u.postOrder(u.ifs[i].r, out)
	return append(out, u.vs[i])
}

// InOrderElements returns the elements of the subtree rooted at p, p
// included, in in-order. An empty slice is returned for the null position or
// a position not valid for u. Recursive.
func (u *Tree[T, S]) InOrderElements(p Pos[T, S]) []T {
	i, ok := u.valid(p)
	if !ok {
		return []T{}
	}
	return u.inOrder(i, []T{})
}

// PreOrderElements is InOrderElements in pre-order. Recursive.
func (u *Tree[T, S]) PreOrderElements(p Pos[T, S]) []T {
	i, ok := u.valid(p)
	if !ok {
		return []T{}
	}
	return u.preOrder(i, []T{})
}

// PostOrderElements is InOrderElements in post-order. Recursive.
func (u *Tree[T, S]) PostOrderElements(p Pos[T, S]) []T {
	i, ok := u.valid(p)
	if !ok {
		return []T{}
	}
	return u.postOrder(i, []T{})
}

// LevelOrderElements is InOrderElements in level-order, using a FIFO queue
// seeded with p that starts at the tree's size and grows if needed.
func (u *Tree[T, S]) LevelOrderElements(p Pos[T, S]) []T {
	out := []T{}
	i, ok := u.valid(p)
	if !ok {
		return out
	}
	q := Queues.MakeArrayQueue[S](uint(u.sz))
	for q.Push(i); !q.Empty(); {
		cur, _ := q.Pop()
		out = append(out, u.vs[cur])
		if l := u.ifs[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[cur].r; r != 0 {
			q.Push(r)
		}
	}
	return out
}

// Elements of the subtree rooted at p in the given order.
func (u *Tree[T, S]) Elements(p Pos[T, S], o Order) []T {
	switch o {
	case PreOrder:
		return u.PreOrderElements(p)
	case PostOrder:
		return u.PostOrderElements(p)
	case LevelOrder:
		return u.LevelOrderElements(p)
	}
	return u.InOrderElements(p)
}

// Walk returns an iterator over the positions and elements of the subtree
// rooted at p in the order o. The sequence is the same as the one Elements
// produces, but it's computed iteratively and stops as soon as the consumer
// does. The tree must not be modified during the iteration; there will be no
// panic if that happens, but the sequence is undefined.
func (u *Tree[T, S]) Walk(p Pos[T, S], o Order) iter.Seq2[Pos[T, S], T] {
	return func(yield func(Pos[T, S], T) bool) {
		i, ok := u.valid(p)
		if !ok {
			return
		}
		switch o {
		case PreOrder:
			u.walkPre(i, yield)
		case PostOrder:
			u.walkPost(i, yield)
		case LevelOrder:
			u.walkLevel(i, yield)
		default:
			u.walkIn(i, yield)
		}
	}
}

func (u *Tree[T, S]) walkPre(i S, yield func(Pos[T, S], T) bool) {
	st := arraystack.New()
	for st.Push(i); !st.Empty(); {
		v, _ := st.Pop()
		cur := v.(S)
		if !yield(u.pos(cur), u.vs[cur]) {
			return
		}
		if r := u.ifs[cur].r; r != 0 {
			st.Push(r)
		}
		if l := u.ifs[cur].l; l != 0 {
			st.Push(l)
		}
	}
}

func (u *Tree[T, S]) walkIn(i S, yield func(Pos[T, S], T) bool) {
	st := arraystack.New()
	for cur := i; cur != 0 || !st.Empty(); {
		if cur != 0 {
			st.Push(cur)
			cur = u.ifs[cur].l
			continue
		}
		v, _ := st.Pop()
		top := v.(S)
		if !yield(u.pos(top), u.vs[top]) {
			return
		}
		cur = u.ifs[top].r
	}
}

// walkPost keeps the last emitted node to tell whether the right subtree of
// the node on top of the stack is already done.
func (u *Tree[T, S]) walkPost(i S, yield func(Pos[T, S], T) bool) {
	st := arraystack.New()
	var last S
	for cur := i; cur != 0 || !st.Empty(); {
		if cur != 0 {
			st.Push(cur)
			cur = u.ifs[cur].l
			continue
		}
		v, _ := st.Peek()
		top := v.(S)
		if r := u.ifs[top].r; r != 0 && r != last {
			cur = r
			continue
		}
		st.Pop()
		if !yield(u.pos(top), u.vs[top]) {
			return
		}
		last = top
	}
}

func (u *Tree[T, S]) walkLevel(i S, yield func(Pos[T, S], T) bool) {
	q := Queues.MakeArrayQueue[S](0)
	for q.Push(i); !q.Empty(); {
		cur, _ := q.Pop()
		if !yield(u.pos(cur), u.vs[cur]) {
			return
		}
		if l := u.ifs[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[cur].r; r != 0 {
			q.Push(r)
		}
	}
}
