package Trees

import (
	"golang.org/x/exp/constraints"
)

// Tree is a plain binary tree with parent links. It keeps no ordering among
// its elements; the caller decides where every node goes through AddRoot,
// AddLeft and AddRight. Nodes are stored in an arena of slots indexed by S,
// and a parent is referenced by index only, so the structure never holds a
// cycle of owning references. Removed slots are recycled by later insertions.
// S must be wide enough to index every node the tree will ever hold at once;
// inserting beyond that panics.
// A Tree is not safe for concurrent use.
type Tree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty tree. hint is the expected number of nodes and only
// sizes the initial allocation.
func New[T any, S constraints.Unsigned](hint S) *Tree[T, S] {
	return &Tree[T, S]{makeBase[T, S](hint)}
}

func (u *Tree[T, S]) pos(i S) Pos[T, S] {
	if i == 0 {
		return Pos[T, S]{}
	}
	return Pos[T, S]{u, i, u.ifs[i].gen}
}

func (u *Tree[T, S]) valid(p Pos[T, S]) (S, bool) {
	if p.t != u || !u.live(p.i) || u.ifs[p.i].gen != p.gen {
		return 0, false
	}
	return p.i, true
}

// check is valid with an error describing why p was rejected.
func (u *Tree[T, S]) check(op string, p Pos[T, S]) (S, error) {
	if i, ok := u.valid(p); ok {
		return i, nil
	}
	reason := "position was removed"
	if p.i == 0 {
		reason = "null position"
	} else if p.t != u {
		reason = "position belongs to another tree"
	}
	return 0, &InvalidPositionError{op, reason}
}

// Root [BinaryTree.Root]
func (u *Tree[T, S]) Root() Pos[T, S] {
	return u.pos(u.root)
}

// Parent [BinaryTree.Parent]
func (u *Tree[T, S]) Parent(p Pos[T, S]) (Pos[T, S], error) {
	i, err := u.check("Parent", p)
	if err != nil {
		return Pos[T, S]{}, err
	}
	return u.pos(u.ifs[i].p), nil
}

// Left [BinaryTree.Left]
func (u *Tree[T, S]) Left(p Pos[T, S]) (Pos[T, S], error) {
	i, err := u.check("Left", p)
	if err != nil {
		return Pos[T, S]{}, err
	}
	return u.pos(u.ifs[i].l), nil
}

// Right [BinaryTree.Right]
func (u *Tree[T, S]) Right(p Pos[T, S]) (Pos[T, S], error) {
	i, err := u.check("Right", p)
	if err != nil {
		return Pos[T, S]{}, err
	}
	return u.pos(u.ifs[i].r), nil
}

// IsInternal [BinaryTree.IsInternal]
func (u *Tree[T, S]) IsInternal(p Pos[T, S]) (bool, error) {
	i, err := u.check("IsInternal", p)
	if err != nil {
		return false, err
	}
	return u.ifs[i].l != 0 || u.ifs[i].r != 0, nil
}

// IsExternal [BinaryTree.IsExternal]
func (u *Tree[T, S]) IsExternal(p Pos[T, S]) (bool, error) {
	i, err := u.check("IsExternal", p)
	if err != nil {
		return false, err
	}
	return u.ifs[i].l == 0 && u.ifs[i].r == 0, nil
}

// Element [BinaryTree.Element]
func (u *Tree[T, S]) Element(p Pos[T, S]) (T, error) {
	i, err := u.check("Element", p)
	if err != nil {
		return *new(T), err
	}
	return u.vs[i], nil
}

// AddRoot creates the root of an empty tree holding e.
// Returns *NonEmptyTreeError if the tree already has a root.
func (u *Tree[T, S]) AddRoot(e T) (Pos[T, S], error) {
	if !u.Empty() {
		return Pos[T, S]{}, &NonEmptyTreeError{uint64(u.sz)}
	}
	u.root = u.alloc(e, 0)
	u.sz = 1
	return u.pos(u.root), nil
}

// AddLeft creates a new leaf holding e as the left child of p.
// Returns *ChildExistsError if p already has a left child.
func (u *Tree[T, S]) AddLeft(p Pos[T, S], e T) (Pos[T, S], error) {
	i, err := u.check("AddLeft", p)
	if err != nil {
		return Pos[T, S]{}, err
	}
	if u.ifs[i].l != 0 {
		return Pos[T, S]{}, &ChildExistsError{"left"}
	}
	c := u.alloc(e, i)
	u.ifs[i].l = c
	u.sz++
	return u.pos(c), nil
}

// AddRight creates a new leaf holding e as the right child of p.
// Returns *ChildExistsError if p already has a right child.
func (u *Tree[T, S]) AddRight(p Pos[T, S], e T) (Pos[T, S], error) {
	i, err := u.check("AddRight", p)
	if err != nil {
		return Pos[T, S]{}, err
	}
	if u.ifs[i].r != 0 {
		return Pos[T, S]{}, &ChildExistsError{"right"}
	}
	c := u.alloc(e, i)
	u.ifs[i].r = c
	u.sz++
	return u.pos(c), nil
}

// SetElement replaces the element at p with e and returns the old one.
func (u *Tree[T, S]) SetElement(p Pos[T, S], e T) (T, error) {
	i, err := u.check("SetElement", p)
	if err != nil {
		return *new(T), err
	}
	old := u.vs[i]
	u.vs[i] = e
	return old, nil
}

// Remove the node at p and return its element. p must have at most one
// child; a node with two children is left alone and *TwoChildrenError is
// returned. If p has a child, that child takes p's place under p's parent,
// or becomes the root if p was the root. p and every other handle to the
// removed node become invalid.
// Time: O(1)
func (u *Tree[T, S]) Remove(p Pos[T, S]) (T, error) {
	i, err := u.check("Remove", p)
	if err != nil {
		return *new(T), err
	}
	n := u.ifs[i]
	if n.l != 0 && n.r != 0 {
		return *new(T), &TwoChildrenError{}
	}
	c := n.l
	if c == 0 {
		c = n.r
	}
	if c != 0 {
		u.ifs[c].p = n.p
	}
	if n.p == 0 {
		u.root = c
	} else if par := &u.ifs[n.p]; par.l == i {
		par.l = c
	} else {
		par.r = c
	}
	v := u.vs[i]
	u.addFree(i)
	u.sz--
	return v, nil
}

// Depth of p, the number of edges between p and the root.
// Time: O(D)
func (u *Tree[T, S]) Depth(p Pos[T, S]) (int, error) {
	i, err := u.check("Depth", p)
	if err != nil {
		return 0, err
	}
	d := 0
	for i = u.ifs[i].p; i != 0; i = u.ifs[i].p {
		d++
	}
	return d, nil
}

func (u *Tree[T, S]) height(i S) int {
	if i == 0 {
		return -1
	}
	return max(u.height(u.ifs[i].l), u.height(u.ifs[i].r)) + 1
}

// Height of the subtree rooted at p: 0 for a leaf, -1 for the null or an
// invalid position. Recursive.
func (u *Tree[T, S]) Height(p Pos[T, S]) int {
	i, ok := u.valid(p)
	if !ok {
		return -1
	}
	return u.height(i)
}

// Corrupt returns whether the tree structure is inconsistent: a child that
// doesn't point back to its parent, a node reachable twice, a dead slot
// linked into the tree, or a size that differs from the reachable count.
func (u *Tree[T, S]) Corrupt() bool {
	if u.root == 0 {
		return u.sz != 0
	}
	if !u.live(u.root) || u.ifs[u.root].p != 0 {
		return true
	}
	seen := make([]bool, len(u.ifs))
	st := []S{u.root}
	var count uint64
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if seen[i] {
			return true
		}
		seen[i] = true
		count++
		for _, c := range [2]S{u.ifs[i].l, u.ifs[i].r} {
			if c == 0 {
				continue
			}
			if !u.live(c) || u.ifs[c].p != i {
				return true
			}
			st = append(st, c)
		}
	}
	return count != uint64(u.sz)
}
