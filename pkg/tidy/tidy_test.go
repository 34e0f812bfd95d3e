package tidy

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/tidytree/pkg/tree"
)

const eps = 1e-6

func point(x, y float64) tree.Point { return tree.Point{X: x, Y: y} }

func assertPos(t *testing.T, n *tree.Node, want tree.Point) {
	t.Helper()
	if math.Abs(n.Position.X-want.X) > eps || math.Abs(n.Position.Y-want.Y) > eps {
		t.Errorf("%s.Position = %+v, want %+v", n.Label, n.Position, want)
	}
}

// randomTree attaches each new node under a uniformly chosen existing node.
func randomTree(rng *rand.Rand, size int, varySize bool) *tree.Node {
	gen := tree.NewGenerator()
	widths := []float64{40, 100, 160}
	heights := []float64{30, 50, 70}

	nodes := []*tree.Node{gen.NewNode("n0")}
	for len(nodes) < size {
		n := gen.NewNode("n")
		if varySize {
			n.Size = tree.Size{Width: widths[rng.IntN(3)], Height: heights[rng.IntN(3)]}
		}
		nodes[rng.IntN(len(nodes))].AddChild(n)
		nodes = append(nodes, n)
	}
	return nodes[0]
}

func byLevel(root *tree.Node) map[int][]*tree.Node {
	levels := map[int][]*tree.Node{}
	for _, n := range tree.Flatten(root) {
		levels[n.Level()] = append(levels[n.Level()], n)
	}
	return levels
}

func TestTwoChildren(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	a := gen.NewNode("A")
	b := gen.NewNode("B")
	root.AddChild(a)
	root.AddChild(b)

	Layout(root, DefaultConfig())

	assertPos(t, a, point(0, 110))
	assertPos(t, b, point(120, 110))
	assertPos(t, root, point(60, 20))
}

func TestSingleChildChain(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	x := gen.NewNode("X")
	y := gen.NewNode("Y")
	root.AddChild(x)
	x.AddChild(y)

	Layout(root, DefaultConfig())

	if root.Position.X != x.Position.X || x.Position.X != y.Position.X {
		t.Errorf("x drifted down the chain: %v %v %v", root.Position.X, x.Position.X, y.Position.X)
	}
	if d := x.Position.Y - root.Position.Y; d != 90 {
		t.Errorf("level step = %v, want 90", d)
	}
	if d := y.Position.Y - x.Position.Y; d != 90 {
		t.Errorf("level step = %v, want 90", d)
	}
}

func TestSingleNode(t *testing.T) {
	root := tree.NewGenerator().NewNode("solo")
	cfg := DefaultConfig()
	cfg.TopXAdjustment = 15
	cfg.TopYAdjustment = 7

	Layout(root, cfg)

	assertPos(t, root, point(15, 7))
}

func TestNilRoot(t *testing.T) {
	if stats := LayoutWithStats(nil, DefaultConfig()); stats != (Stats{}) {
		t.Errorf("LayoutWithStats(nil) = %+v", stats)
	}
}

func TestApportionSpreadsShift(t *testing.T) {
	// root has A (three children), leaf B, C (three children). Without
	// apportionment C's children would overlap A's; the shift is shared with
	// B so that B ends up midway between A and C.
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	a := gen.NewNode("A")
	b := gen.NewNode("B")
	c := gen.NewNode("C")
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	for _, p := range []*tree.Node{a, c} {
		for range 3 {
			p.AddChild(gen.NewNode(p.Label + "'"))
		}
	}

	Layout(root, DefaultConfig())

	assertPos(t, root, point(300, 20))
	assertPos(t, a, point(120, 110))
	assertPos(t, b, point(300, 110))
	assertPos(t, c, point(480, 110))
	for i, want := range []float64{0, 120, 240} {
		assertPos(t, a.ChildAt(i), point(want, 200))
	}
	for i, want := range []float64{360, 480, 600} {
		assertPos(t, c.ChildAt(i), point(want, 200))
	}

	if got := c.Scratch.Modifier; got != 360 {
		t.Errorf("C modifier = %v, want 360", got)
	}
	if got := b.Scratch.Modifier; got != 60 {
		t.Errorf("B modifier = %v, want 60", got)
	}
}

func TestCousinSubtreesSeparated(t *testing.T) {
	// a (under P) and b (under Q) are cousins; their children meet at depth 3.
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	p := gen.NewNode("P")
	q := gen.NewNode("Q")
	a := gen.NewNode("a")
	b := gen.NewNode("b")
	root.AddChild(p)
	root.AddChild(q)
	p.AddChild(a)
	q.AddChild(b)
	a1, a2 := gen.NewNode("a1"), gen.NewNode("a2")
	b1, b2 := gen.NewNode("b1"), gen.NewNode("b2")
	a.AddChild(a1)
	a.AddChild(a2)
	b.AddChild(b1)
	b.AddChild(b2)

	cfg := DefaultConfig()
	Layout(root, cfg)

	if gap := b1.Position.X - (a2.Position.X + a2.Size.Width); math.Abs(gap-cfg.SubtreeSeparation) > eps {
		t.Errorf("cousin gap = %v, want %v", gap, cfg.SubtreeSeparation)
	}
	assertPos(t, a2, point(120, 290))
	assertPos(t, b1, point(240, 290))
	assertPos(t, root, point(180, 20))
}

func TestNeighborsThreadAcrossParents(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	p := gen.NewNode("P")
	q := gen.NewNode("Q")
	root.AddChild(p)
	root.AddChild(q)
	a := gen.NewNode("a")
	b := gen.NewNode("b")
	p.AddChild(a)
	q.AddChild(b)

	Layout(root, DefaultConfig())

	if a.Scratch.RightNeighbor != b || b.Scratch.LeftNeighbor != a {
		t.Error("cousins at the same depth should be neighbors")
	}
	if a.RightSibling() != nil || b.LeftSibling() != nil {
		t.Error("cousins are not siblings")
	}
	if p.RightSibling() != q {
		t.Error("P and Q should be siblings")
	}
	if root.Scratch.LeftNeighbor != nil || root.Scratch.RightNeighbor != nil {
		t.Error("root has no neighbors")
	}
}

func TestNeighborsRecomputed(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	a := gen.NewNode("a")
	b := gen.NewNode("b")
	root.AddChild(a)
	root.AddChild(b)
	Layout(root, DefaultConfig())

	if err := tree.Destroy(b); err != nil {
		t.Fatal(err)
	}
	Layout(root, DefaultConfig())

	if a.Scratch.RightNeighbor != nil {
		t.Error("stale right neighbor survived a second layout")
	}
	assertPos(t, a, point(0, 110))
	assertPos(t, root, point(0, 20))
}

func TestWideParentNormalized(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	root.Size.Width = 200
	child := gen.NewNode("child")
	root.AddChild(child)

	stats := LayoutWithStats(root, DefaultConfig())

	assertPos(t, root, point(0, 20))
	assertPos(t, child, point(50, 110))
	if stats.Shift != 50 {
		t.Errorf("Shift = %v, want 50", stats.Shift)
	}
}

func TestMaxDepthClipsDeeperNodes(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	x := gen.NewNode("X")
	y := gen.NewNode("Y")
	root.AddChild(x)
	x.AddChild(y)
	y.Position = point(999, 999)

	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	stats := LayoutWithStats(root, cfg)

	assertPos(t, y, point(999, 999))
	assertPos(t, x, point(0, 110))
	assertPos(t, root, point(0, 20))
	if stats.Positioned != 2 || stats.Levels != 2 {
		t.Errorf("stats = %+v, want 2 positioned over 2 levels", stats)
	}
}

func TestZeroMaxDepthIsUnlimited(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	parent := root
	for range 5 {
		c := gen.NewNode("c")
		parent.AddChild(c)
		parent = c
	}

	stats := LayoutWithStats(root, Config{LevelSeparation: 10})

	if stats.Positioned != 6 {
		t.Errorf("Positioned = %d, want 6", stats.Positioned)
	}
	assertPos(t, parent, point(0, 5*(tree.DefaultHeight+10)))
}

func TestLevelUsesTallestNode(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	short := gen.NewNode("short")
	tall := gen.NewNode("tall")
	tall.Size.Height = 120
	root.AddChild(short)
	root.AddChild(tall)
	short.AddChild(gen.NewNode("grandchild"))

	Layout(root, DefaultConfig())

	// Level 1 is 120 tall, so level 2 starts 120 + 40 below it.
	if got := short.FirstChild().Position.Y; got != 110+120+40 {
		t.Errorf("grandchild y = %v, want %v", got, 110+120+40)
	}
}

func TestProperties(t *testing.T) {
	cfg := DefaultConfig()
	minGap := min(cfg.SiblingSeparation, cfg.SubtreeSeparation)

	for seed := range uint64(200) {
		rng := rand.New(rand.NewPCG(seed, 7))
		root := randomTree(rng, 1+rng.IntN(60), seed%2 == 0)

		Layout(root, cfg)
		nodes := tree.Flatten(root)
		first := make([]tree.Point, len(nodes))
		for i, n := range nodes {
			first[i] = n.Position
		}

		// Left alignment.
		minX := math.Inf(1)
		for _, n := range nodes {
			minX = min(minX, n.Position.X)
		}
		if math.Abs(minX) > eps {
			t.Errorf("seed %d: min x = %v, want 0", seed, minX)
		}

		// No overlap at any depth, in the same left-to-right order as the tree.
		for level, row := range byLevel(root) {
			for i := 1; i < len(row); i++ {
				l, r := row[i-1], row[i]
				if gap := r.Position.X - (l.Position.X + l.Size.Width); gap < minGap-eps {
					t.Errorf("seed %d level %d: gap %v between %d and %d", seed, level, gap, l.ID, r.ID)
				}
			}
		}

		// Parents centered over their children.
		for _, n := range nodes {
			if n.IsLeaf() {
				continue
			}
			f, l := n.FirstChild(), n.LastChild()
			mid := (f.Position.X + l.Position.X + l.Size.Width) / 2
			if math.Abs(n.Position.X+n.Size.Width/2-mid) > eps {
				t.Errorf("seed %d: node %d not centered (%v vs %v)", seed, n.ID, n.Position.X+n.Size.Width/2, mid)
			}
		}

		// Idempotence.
		Layout(root, cfg)
		second := make([]tree.Point, len(nodes))
		for i, n := range nodes {
			second[i] = n.Position
		}
		if !slices.Equal(first, second) {
			t.Errorf("seed %d: second layout moved nodes", seed)
		}
	}
}
