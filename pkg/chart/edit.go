package chart

import (
	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Select makes the node with the given id the selection.
func (c *Chart) Select(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := tree.FindByID(c.root, id)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "node %d not found", id)
	}
	c.selected = n
	return nil
}

// SelectAt selects the node whose box strictly contains (x, y). Nodes below
// the configured MaxDepth are not drawn and cannot be hit. It reports whether
// a node was hit; a miss leaves the selection unchanged.
func (c *Chart) SelectAt(x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := tree.HitTest(c.root, c.cfg.MaxDepth, x, y)
	if ok {
		c.selected = n
	}
	return ok
}

// SelectParent moves the selection one level up. At the root it is a no-op.
func (c *Chart) SelectParent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p := c.selected.Parent(); p != nil {
		c.selected = p
	}
}

// SelectFirstChild moves the selection to the leftmost child, if any.
func (c *Chart) SelectFirstChild() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f := c.selected.FirstChild(); f != nil {
		c.selected = f
	}
}

// SelectSibling moves the selection to the previous (delta < 0) or next
// (delta > 0) sibling. It stops at either end of the sibling list.
func (c *Chart) SelectSibling(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var next *tree.Node
	switch {
	case delta < 0:
		next = c.selected.LeftSibling()
	case delta > 0:
		next = c.selected.RightSibling()
	}
	if next != nil {
		c.selected = next
	}
}

// AddChild appends a node labeled "Child of <label>" to the selection and
// returns it. The selection does not move.
func (c *Chart) AddChild() *tree.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addChild("Child of " + c.selected.Label)
}

// AddChildLabeled appends a node with a caller-chosen label.
func (c *Chart) AddChildLabeled(label string) (*tree.Node, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addChild(label), nil
}

func (c *Chart) addChild(label string) *tree.Node {
	n := c.gen.NewNode(label)
	c.selected.AddChild(n)
	c.relayout()
	return n
}

// Rename changes the selection's label.
func (c *Chart) Rename(label string) error {
	if err := errors.ValidateLabel(label); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected.Label = label
	return nil
}

// Remove detaches the selection with its subtree and selects its parent.
// Removing the root fails with ROOT_REMOVAL_REJECTED and changes nothing.
func (c *Chart) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	parent := c.selected.Parent()
	if err := tree.Destroy(c.selected); err != nil {
		return err
	}
	c.selected = parent
	c.relayout()
	return nil
}

// ZoomIn enlarges every node by ZoomInFactor.
func (c *Chart) ZoomIn() { c.scale(ZoomInFactor) }

// ZoomOut shrinks every node by ZoomOutFactor.
func (c *Chart) ZoomOut() { c.scale(ZoomOutFactor) }

func (c *Chart) scale(factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tree.Scale(c.root, factor)
	s := c.gen.DefaultSize()
	c.gen.SetDefaultSize(tree.Size{Width: s.Width * factor, Height: s.Height * factor})
	c.zoom *= factor
	c.relayout()
}
