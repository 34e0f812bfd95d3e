package tidy

import (
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Stats summarizes a layout pass.
type Stats struct {
	Positioned int     // nodes that received a position
	Levels     int     // levels threaded by the first walk
	Shift      float64 // x shift applied by normalization (0 if none)
}

// Layout positions every node reachable from root within cfg.MaxDepth.
//
// It overwrites Position and Scratch of those nodes and nothing else. Calling
// it twice without changing the tree yields identical positions. The tree
// must be acyclic and must not be mutated while Layout runs.
func Layout(root *tree.Node, cfg Config) {
	LayoutWithStats(root, cfg)
}

// LayoutWithStats is [Layout] that also reports what the pass did.
func LayoutWithStats(root *tree.Node, cfg Config) Stats {
	if root == nil {
		return Stats{}
	}

	w := newWalker(cfg)
	w.firstWalk(root, 0)

	w.xOffset = cfg.TopXAdjustment
	w.yOffset = cfg.TopYAdjustment
	w.secondWalk(root)

	stats := Stats{Positioned: w.positioned, Levels: len(w.levelHeight)}
	if w.minX < 0 {
		stats.Shift = -w.minX
		w.xOffset += stats.Shift
		w.secondWalk(root)
	}
	return stats
}

// walker holds the per-invocation tables of a single layout.
type walker struct {
	cfg      Config
	maxDepth int

	levelHeight []float64    // tallest node per level
	lastAt      []*tree.Node // most recent node seen per level during the first walk

	xOffset, yOffset float64
	minX             float64
	positioned       int
}

func newWalker(cfg Config) *walker {
	return &walker{cfg: cfg, maxDepth: cfg.depthLimit()}
}

// thread records n's height for its level and links it to the previous node
// at the same depth.
func (w *walker) thread(n *tree.Node, level int) {
	for len(w.levelHeight) <= level {
		w.levelHeight = append(w.levelHeight, 0)
		w.lastAt = append(w.lastAt, nil)
	}
	w.levelHeight[level] = max(w.levelHeight[level], n.Size.Height)

	if prev := w.lastAt[level]; prev != nil {
		n.Scratch.LeftNeighbor = prev
		prev.Scratch.RightNeighbor = n
	}
	w.lastAt[level] = n
}
