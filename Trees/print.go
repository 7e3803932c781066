package Trees

import (
	"github.com/shivamMg/ppds/tree"
	"golang.org/x/exp/constraints"
)

// printNode adapts a slot to tree.Node. A lone child is printed without
// telling left from right.
type printNode[T any, S constraints.Unsigned] struct {
	u *Tree[T, S]
	i S
}

func (n printNode[T, S]) Data() interface{} {
	return n.u.vs[n.i]
}

func (n printNode[T, S]) Children() (c []tree.Node) {
	for _, j := range [2]S{n.u.ifs[n.i].l, n.u.ifs[n.i].r} {
		if j != 0 {
			c = append(c, printNode[T, S]{n.u, j})
		}
	}
	return
}

// Sprint renders the subtree rooted at p as text, one node per line with its
// children indented below it, left child first. Returns "" for an invalid
// position.
func (u *Tree[T, S]) Sprint(p Pos[T, S]) string {
	i, ok := u.valid(p)
	if !ok {
		return ""
	}
	return tree.SprintHrn(printNode[T, S]{u, i})
}
