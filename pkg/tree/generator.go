package tree

// Generator creates detached nodes with unique, monotonically increasing
// identifiers and a default size.
//
// The zero value is ready to use: ids start at 0 and nodes get
// [DefaultWidth] x [DefaultHeight]. Generator is not safe for concurrent use.
type Generator struct {
	next int
	size Size
}

// NewGenerator returns a generator producing nodes of the default size.
func NewGenerator() *Generator {
	return &Generator{size: Size{Width: DefaultWidth, Height: DefaultHeight}}
}

// NewNode allocates a detached node with the next identifier.
func (g *Generator) NewNode(label string) *Node {
	n := &Node{ID: g.next, Label: label, Size: g.DefaultSize()}
	g.next++
	return n
}

// DefaultSize returns the size given to new nodes.
func (g *Generator) DefaultSize() Size {
	if g.size.Width <= 0 || g.size.Height <= 0 {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return g.size
}

// SetDefaultSize changes the size given to nodes created from now on.
func (g *Generator) SetDefaultSize(s Size) { g.size = s }

// Next returns the identifier the next call to NewNode will assign.
func (g *Generator) Next() int { return g.next }

// Reset restarts numbering at 0.
func (g *Generator) Reset() { g.next = 0 }
