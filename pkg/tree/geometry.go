package tree

import "math"

// Rect is an axis-aligned box in layout coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Box returns the node's box at its current position.
func (n *Node) Box() Rect {
	return Rect{
		MinX: n.Position.X,
		MinY: n.Position.Y,
		MaxX: n.Position.X + n.Size.Width,
		MaxY: n.Position.Y + n.Size.Height,
	}
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
// Points on the border are outside, so adjacent boxes never both match.
func (r Rect) Contains(x, y float64) bool {
	return x > r.MinX && y > r.MinY && x < r.MaxX && y < r.MaxY
}

// Bounds returns the box enclosing every node at most maxDepth levels below
// root (no limit when maxDepth <= 0) at its current position. It returns the
// zero Rect for a nil root.
func Bounds(root *Node, maxDepth int) Rect {
	if root == nil {
		return Rect{}
	}
	b := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	WalkDepth(root, maxDepth, func(n *Node) bool {
		box := n.Box()
		b.MinX = min(b.MinX, box.MinX)
		b.MinY = min(b.MinY, box.MinY)
		b.MaxX = max(b.MaxX, box.MaxX)
		b.MaxY = max(b.MaxY, box.MaxY)
		return true
	})
	return b
}

// HitTest returns the first node in pre-order whose box strictly contains
// (x, y). Nodes more than maxDepth levels below root are not laid out and
// never match; maxDepth <= 0 means no limit.
func HitTest(root *Node, maxDepth int, x, y float64) (*Node, bool) {
	var hit *Node
	WalkDepth(root, maxDepth, func(n *Node) bool {
		if hit != nil {
			return false
		}
		if n.Box().Contains(x, y) {
			hit = n
			return false
		}
		return true
	})
	return hit, hit != nil
}
