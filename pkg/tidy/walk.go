package tidy

import (
	"github.com/matzehuels/tidytree/pkg/tree"
)

// firstWalk assigns preliminary x values and modifiers in post-order.
func (w *walker) firstWalk(n *tree.Node, level int) {
	n.Position = tree.Point{}
	n.Scratch = tree.Scratch{}
	w.thread(n, level)

	if n.IsLeaf() || level == w.maxDepth {
		if left := n.LeftSibling(); left != nil {
			n.Scratch.Prelim = w.nextTo(left)
		}
		return
	}

	for _, c := range n.Children() {
		w.firstWalk(c, level+1)
	}

	mid := childrenCenter(n) - n.Size.Width/2
	left := n.LeftSibling()
	if left == nil {
		n.Scratch.Prelim = mid
		return
	}
	n.Scratch.Prelim = w.nextTo(left)
	n.Scratch.Modifier = n.Scratch.Prelim - mid
	w.apportion(n, level)
}

// nextTo returns the preliminary x of a node placed right of sibling.
func (w *walker) nextTo(sibling *tree.Node) float64 {
	return sibling.Scratch.Prelim + sibling.Size.Width + w.cfg.SiblingSeparation
}

// childrenCenter returns the preliminary x of the middle of n's children span.
func childrenCenter(n *tree.Node) float64 {
	first, last := n.FirstChild(), n.LastChild()
	return first.Scratch.Prelim + (last.Scratch.Prelim-first.Scratch.Prelim+last.Size.Width)/2
}

// apportion pushes n's subtree right, level by level, until it clears the
// subtrees to its left by SubtreeSeparation. The push is spread across the
// siblings between n and the conflicting subtree's ancestor.
func (w *walker) apportion(n *tree.Node, level int) {
	child := n.FirstChild()
	neighbor := child.Scratch.LeftNeighbor

	for j := 1; child != nil && neighbor != nil && j <= w.maxDepth-level; {
		var sumRight, sumLeft float64
		right, left := child, neighbor
		for range j {
			right = right.Parent()
			left = left.Parent()
			sumRight += right.Scratch.Modifier
			sumLeft += left.Scratch.Modifier
		}

		gap := (child.Scratch.Prelim + sumRight) -
			(neighbor.Scratch.Prelim + sumLeft + neighbor.Size.Width + w.cfg.SubtreeSeparation)
		if gap < 0 {
			moveSubtrees(n, left, -gap)
		}

		j++
		if child.IsLeaf() {
			child = leftmost(n, 0, j)
		} else {
			child = child.FirstChild()
		}
		if child != nil {
			neighbor = child.Scratch.LeftNeighbor
		}
	}
}

// moveSubtrees shifts n and its left siblings up to (not including) stop by
// a linearly decreasing share of total: n moves by total, the next sibling by
// one share less, and so on. Nothing moves when stop is not a left sibling of n.
func moveSubtrees(n, stop *tree.Node, total float64) {
	count := 0
	s := n
	for ; s != nil && s != stop; s = s.LeftSibling() {
		count++
	}
	if s == nil {
		return
	}

	share := total / float64(count)
	for s := n; s != stop; s = s.LeftSibling() {
		s.Scratch.Prelim += total
		s.Scratch.Modifier += total
		total -= share
	}
}

// leftmost returns the first node, in child order, that lies depth levels
// below n, or nil when n's subtree is not that deep.
func leftmost(n *tree.Node, level, depth int) *tree.Node {
	if level >= depth {
		return n
	}
	for _, c := range n.Children() {
		if found := leftmost(c, level+1, depth); found != nil {
			return found
		}
	}
	return nil
}

// secondWalk converts preliminary x values into absolute positions. It
// places a node, descends into its first child with the node's modifier
// added, then continues with the node's right sibling at the same offsets.
func (w *walker) secondWalk(root *tree.Node) {
	w.minX = 0
	w.positioned = 0
	w.place(root, 0, 0, 0)
}

func (w *walker) place(n *tree.Node, level int, x, y float64) {
	if level > w.maxDepth {
		return
	}
	for ; n != nil; n = n.RightSibling() {
		n.Position = tree.Point{
			X: w.xOffset + n.Scratch.Prelim + x,
			Y: w.yOffset + y,
		}
		if w.positioned == 0 || n.Position.X < w.minX {
			w.minX = n.Position.X
		}
		w.positioned++

		if !n.IsLeaf() {
			w.place(n.FirstChild(), level+1, x+n.Scratch.Modifier, y+w.levelHeight[level]+w.cfg.LevelSeparation)
		}
	}
}
