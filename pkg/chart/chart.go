package chart

import (
	"sync"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Zoom factors applied per step.
const (
	ZoomInFactor  = 1.05
	ZoomOutFactor = 0.95
)

// Chart is a laid-out tree with a selection.
type Chart struct {
	mu       sync.Mutex
	root     *tree.Node
	gen      *tree.Generator
	selected *tree.Node
	cfg      tidy.Config
	zoom     float64
	stats    tidy.Stats
}

// Info describes the selected node for side panels and status lines.
type Info struct {
	ID       int        `json:"id"`
	Label    string     `json:"label"`
	Level    int        `json:"level"`
	Children int        `json:"children"`
	Position tree.Point `json:"position"`
	Size     tree.Size  `json:"size"`
}

// New creates a chart holding a single root node labeled label.
func New(label string, cfg tidy.Config) (*Chart, error) {
	gen := tree.NewGenerator()
	return FromTree(gen.NewNode(label), gen, cfg)
}

// FromTree wraps an existing tree. New nodes are drawn from gen, which must
// be the generator root's nodes came from so that ids stay unique.
func FromTree(root *tree.Node, gen *tree.Generator, cfg tidy.Config) (*Chart, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart needs a root node")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{root: root, gen: gen, selected: root, cfg: cfg, zoom: 1}
	c.relayout()
	return c, nil
}

func (c *Chart) relayout() {
	c.stats = tidy.LayoutWithStats(c.root, c.cfg)
}

// View calls fn with the root and the selected node while holding the
// chart's lock. fn must not retain either pointer or call back into c.
func (c *Chart) View(fn func(root, selected *tree.Node)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.root, c.selected)
}

// Config returns the layout configuration.
func (c *Chart) Config() tidy.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// SetConfig validates cfg, stores it and lays the tree out again.
func (c *Chart) SetConfig(cfg tidy.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.relayout()
	return nil
}

// Stats reports the most recent layout pass.
func (c *Chart) Stats() tidy.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Zoom returns the cumulative zoom factor, 1 for an unzoomed chart.
func (c *Chart) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

// Info describes the selected node.
func (c *Chart) Info() Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.selected
	return Info{
		ID:       n.ID,
		Label:    n.Label,
		Level:    n.Level(),
		Children: n.ChildCount(),
		Position: n.Position,
		Size:     n.Size,
	}
}
