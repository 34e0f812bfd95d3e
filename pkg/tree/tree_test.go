package tree

import (
	"slices"
	"testing"

	"github.com/matzehuels/tidytree/pkg/errors"
)

// family builds:
//
//	0 root
//	├── 1 a
//	│   └── 3 c
//	└── 2 b
func family(gen *Generator) (root, a, b, c *Node) {
	root = gen.NewNode("root")
	a = gen.NewNode("a")
	b = gen.NewNode("b")
	c = gen.NewNode("c")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(c)
	return root, a, b, c
}

func ids(nodes []*Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestGeneratorIDs(t *testing.T) {
	gen := NewGenerator()
	a := gen.NewNode("a")
	b := gen.NewNode("b")
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("ids = %d, %d, want 0, 1", a.ID, b.ID)
	}
	if gen.Next() != 2 {
		t.Errorf("Next() = %d, want 2", gen.Next())
	}

	gen.Reset()
	if c := gen.NewNode("c"); c.ID != 0 {
		t.Errorf("after Reset id = %d, want 0", c.ID)
	}
}

func TestGeneratorDefaultSize(t *testing.T) {
	var zero Generator
	n := zero.NewNode("x")
	if n.Size != (Size{Width: DefaultWidth, Height: DefaultHeight}) {
		t.Errorf("zero generator size = %+v", n.Size)
	}

	gen := NewGenerator()
	gen.SetDefaultSize(Size{Width: 80, Height: 30})
	if got := gen.NewNode("y").Size; got != (Size{Width: 80, Height: 30}) {
		t.Errorf("custom size = %+v", got)
	}
}

func TestNewNodeIsDetached(t *testing.T) {
	n := NewGenerator().NewNode("Maekar I")
	if n.Parent() != nil || !n.IsRoot() || !n.IsLeaf() {
		t.Error("new node should be a detached leaf")
	}
	if n.Label != "Maekar I" {
		t.Errorf("Label = %q", n.Label)
	}
}

func TestAddChild(t *testing.T) {
	gen := NewGenerator()
	p := gen.NewNode("p")
	first := gen.NewNode("first")
	last := gen.NewNode("last")

	p.AddChild(first)
	p.AddChild(last)

	if last.Parent() != p {
		t.Error("child parent not set")
	}
	if p.LastChild() != last || p.FirstChild() != first {
		t.Error("children not appended in order")
	}
	if p.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", p.ChildCount())
	}
	if p.ChildAt(5) != nil || p.ChildAt(-1) != nil {
		t.Error("ChildAt out of range should be nil")
	}
}

func TestLevel(t *testing.T) {
	root, a, b, c := family(NewGenerator())
	tests := []struct {
		node *Node
		want int
	}{
		{root, 0}, {a, 1}, {b, 1}, {c, 2},
	}
	for _, tt := range tests {
		if got := tt.node.Level(); got != tt.want {
			t.Errorf("%s.Level() = %d, want %d", tt.node.Label, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	root, _, _, _ := family(NewGenerator())
	got := ids(Flatten(root))
	want := []int{0, 1, 3, 2}
	if !slices.Equal(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}

	// Fresh slice every call.
	first := Flatten(root)
	first[0] = nil
	if Flatten(root)[0] != root {
		t.Error("Flatten should not share its result")
	}
}

func TestFindByID(t *testing.T) {
	root, _, _, c := family(NewGenerator())

	if n, ok := FindByID(root, 3); !ok || n != c {
		t.Errorf("FindByID(3) = %v, %v", n, ok)
	}
	if _, ok := FindByID(root, 42); ok {
		t.Error("FindByID(42) should not be found")
	}
	if _, ok := FindByID(nil, 0); ok {
		t.Error("FindByID(nil) should not be found")
	}
}

func TestFindByIDFirstMatchInPreOrder(t *testing.T) {
	// Duplicate ids only arise from hand-built nodes; the first in pre-order wins.
	root := &Node{ID: 1, Label: "root"}
	left := &Node{ID: 7, Label: "left"}
	deep := &Node{ID: 7, Label: "deep"}
	right := &Node{ID: 7, Label: "right"}
	root.AddChild(left)
	left.AddChild(deep)
	root.AddChild(right)

	n, _ := FindByID(root, 7)
	if n != left {
		t.Errorf("FindByID returned %q, want left", n.Label)
	}
}

func TestDestroy(t *testing.T) {
	root, a, b, c := family(NewGenerator())

	if err := Destroy(a); err != nil {
		t.Fatalf("Destroy(a) error: %v", err)
	}
	got := Flatten(root)
	if slices.Contains(got, a) || slices.Contains(got, c) {
		t.Error("destroyed subtree still reachable")
	}
	if !slices.Equal(ids(got), []int{0, 2}) {
		t.Errorf("Flatten() = %v, want [0 2]", ids(got))
	}
	if a.Parent() != nil {
		t.Error("destroyed node should be detached")
	}
	if root.FirstChild() != b {
		t.Error("sibling order not preserved")
	}
}

func TestDestroyRootRejected(t *testing.T) {
	root, _, _, _ := family(NewGenerator())
	before := ids(Flatten(root))

	err := Destroy(root)
	if err == nil {
		t.Fatal("Destroy(root) should fail")
	}
	if !errors.Is(err, errors.ErrCodeRootRemovalRejected) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeRootRemovalRejected)
	}
	if after := ids(Flatten(root)); !slices.Equal(before, after) {
		t.Errorf("tree changed: %v -> %v", before, after)
	}
}

func TestDestroyByIdentity(t *testing.T) {
	gen := NewGenerator()
	p := gen.NewNode("p")
	x := &Node{ID: 5, Label: "twin"}
	y := &Node{ID: 5, Label: "twin"}
	p.AddChild(x)
	p.AddChild(y)

	if err := Destroy(y); err != nil {
		t.Fatal(err)
	}
	if p.ChildCount() != 1 || p.FirstChild() != x {
		t.Error("Destroy removed the wrong node")
	}
}

func TestSiblingsFollowNeighbors(t *testing.T) {
	_, a, b, c := family(NewGenerator())

	// Hand-thread the links the layout engine would set at depth 1 and 2.
	a.Scratch.RightNeighbor = b
	b.Scratch.LeftNeighbor = a
	cousin := &Node{ID: 9}
	b.AddChild(cousin)
	c.Scratch.RightNeighbor = cousin
	cousin.Scratch.LeftNeighbor = c

	if b.LeftSibling() != a || a.RightSibling() != b {
		t.Error("siblings sharing a parent should be returned")
	}
	if cousin.LeftSibling() != nil || c.RightSibling() != nil {
		t.Error("neighbors with different parents are not siblings")
	}
}

func TestScale(t *testing.T) {
	root, _, _, c := family(NewGenerator())
	Scale(root, 1.05)
	if c.Size.Width != DefaultWidth*1.05 || c.Size.Height != DefaultHeight*1.05 {
		t.Errorf("scaled size = %+v", c.Size)
	}
}

func TestCountAndDepth(t *testing.T) {
	root, _, _, _ := family(NewGenerator())
	if got := Count(root); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if got := Depth(root); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
	if Depth(nil) != 0 {
		t.Error("Depth(nil) should be 0")
	}
}

func TestHitTest(t *testing.T) {
	root, a, b, _ := family(NewGenerator())
	root.Position = Point{X: 60, Y: 20}
	a.Position = Point{X: 0, Y: 110}
	b.Position = Point{X: 120, Y: 110}

	// c is never positioned and stays at the origin.
	c := a.FirstChild()

	tests := []struct {
		name     string
		maxDepth int
		x, y     float64
		want     *Node
		wantOK   bool
	}{
		{"root center", 0, 110, 45, root, true},
		{"a interior", 0, 50, 130, a, true},
		{"b interior", 0, 150, 140, b, true},
		{"gap between a and b", 0, 110, 130, nil, false},
		{"on border", 0, 0, 110, nil, false},
		{"unlimited reaches c", 0, 10, 10, c, true},
		{"c below depth cap", 1, 10, 10, nil, false},
		{"a within depth cap", 1, 50, 130, a, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(root, tt.maxDepth, tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HitTest(%d, %v, %v) = %v, %v", tt.maxDepth, tt.x, tt.y, got, ok)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	root, a, b, c := family(NewGenerator())
	root.Position = Point{X: 60, Y: 20}
	a.Position = Point{X: 0, Y: 110}
	b.Position = Point{X: 120, Y: 110}
	c.Position = Point{X: 0, Y: 200}

	got := Bounds(root, 0)
	want := Rect{MinX: 0, MinY: 20, MaxX: 220, MaxY: 250}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if got.Width() != 220 || got.Height() != 230 {
		t.Errorf("Width/Height = %v/%v", got.Width(), got.Height())
	}

	if got := Bounds(root, 1); got != (Rect{MinX: 0, MinY: 20, MaxX: 220, MaxY: 160}) {
		t.Errorf("Bounds(depth 1) = %+v", got)
	}
	if got := Bounds(nil, 0); got != (Rect{}) {
		t.Errorf("Bounds(nil) = %+v", got)
	}
}

func TestWalkDepth(t *testing.T) {
	root, _, _, _ := family(NewGenerator())

	tests := []struct {
		maxDepth int
		want     []int
	}{
		{0, []int{0, 1, 3, 2}},
		{-1, []int{0, 1, 3, 2}},
		{1, []int{0, 1, 2}},
		{2, []int{0, 1, 3, 2}},
	}
	for _, tt := range tests {
		var got []int
		WalkDepth(root, tt.maxDepth, func(n *Node) bool {
			got = append(got, n.ID)
			return true
		})
		if !slices.Equal(got, tt.want) {
			t.Errorf("WalkDepth(%d) = %v, want %v", tt.maxDepth, got, tt.want)
		}
	}
}
