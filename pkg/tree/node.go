package tree

import (
	"slices"

	"github.com/matzehuels/tidytree/pkg/errors"
)

// Default node dimensions used by a zero-configured [Generator].
const (
	DefaultWidth  = 100.0
	DefaultHeight = 50.0
)

// Size is the width and height of a node's box.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is an absolute coordinate of a node's top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scratch is the layout engine's working state for a node. It is reset at
// the start of every layout pass and is stale otherwise.
type Scratch struct {
	Prelim        float64 // x relative to the node's subtree, before ancestor modifiers
	Modifier      float64 // shift applied to every descendant during the second walk
	LeftNeighbor  *Node   // previous node at the same depth (any parent)
	RightNeighbor *Node   // next node at the same depth (any parent)
}

// Node is a vertex of the tree. The zero value is a detached node with id 0,
// but nodes are normally created with [Generator.NewNode].
type Node struct {
	ID       int
	Label    string
	Size     Size
	Position Point
	Scratch  Scratch

	parent   *Node
	children []*Node
}

// Parent returns the owning node, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child list. The slice is owned by the node
// and must not be modified; use [Node.AddChild] and [Destroy].
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the i-th child, or nil when i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the leftmost child, or nil for a leaf.
func (n *Node) FirstChild() *Node { return n.ChildAt(0) }

// LastChild returns the rightmost child, or nil for a leaf.
func (n *Node) LastChild() *Node { return n.ChildAt(len(n.children) - 1) }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Level returns the depth of the node: 0 for a root, parent's level + 1 otherwise.
func (n *Node) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// LeftSibling returns the left same-depth neighbor if it shares this node's
// parent. It relies on links set by the last layout pass.
func (n *Node) LeftSibling() *Node {
	if l := n.Scratch.LeftNeighbor; l != nil && l.parent == n.parent {
		return l
	}
	return nil
}

// RightSibling returns the right same-depth neighbor if it shares this
// node's parent. It relies on links set by the last layout pass.
func (n *Node) RightSibling() *Node {
	if r := n.Scratch.RightNeighbor; r != nil && r.parent == n.parent {
		return r
	}
	return nil
}

// AddChild sets child's parent to n and appends it to n's children.
//
// No cycle check is performed and a child that already has a parent is not
// detached from it first. Callers must only attach detached nodes.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Destroy detaches node, and with it its whole subtree, from its parent.
//
// Destroying a root is rejected with an [errors.ErrCodeRootRemovalRejected]
// error and leaves the tree unchanged. The parent's child list is searched by
// identity, so two nodes with equal fields are never confused.
func Destroy(node *Node) error {
	parent := node.parent
	if parent == nil {
		return errors.New(errors.ErrCodeRootRemovalRejected, "cannot remove root node %d", node.ID)
	}
	if i := slices.Index(parent.children, node); i >= 0 {
		parent.children = slices.Delete(parent.children, i, i+1)
	}
	node.parent = nil
	return nil
}
