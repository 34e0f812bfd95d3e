package orgchart

import (
	"strings"
	"testing"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// family builds root with children a and b, and a grandchild under a.
func family() (root, a, b, grand *tree.Node) {
	gen := tree.NewGenerator()
	root = gen.NewNode("root")
	a = gen.NewNode("a")
	b = gen.NewNode("b")
	grand = gen.NewNode("grand")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(grand)
	tidy.Layout(root, tidy.DefaultConfig())
	return root, a, b, grand
}

func TestRenderSVGFrame(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("root")
	root.AddChild(gen.NewNode("A"))
	root.AddChild(gen.NewNode("B"))
	tidy.Layout(root, tidy.DefaultConfig())

	svg := string(RenderSVG(root))

	// Children end at x=220 and y=160; default padding is 20.
	if !strings.Contains(svg, `viewBox="0 0 240.0 180.0" width="240" height="180"`) {
		t.Errorf("unexpected frame:\n%s", firstLine(svg))
	}
	if got := strings.Count(svg, `class="node"`); got != 3 {
		t.Errorf("node groups = %d, want 3", got)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestRenderSVGConnectors(t *testing.T) {
	root, _, _, _ := family()
	svg := string(RenderSVG(root))

	// root: drop, bar, two stubs. a: drop and one stub, no bar.
	if got := strings.Count(svg, `class="connector"`); got != 6 {
		t.Errorf("connectors = %d, want 6", got)
	}
	// The bar under root spans the children's centers at y=90.
	if !strings.Contains(svg, `x1="50.00" y1="90.00" x2="170.00" y2="90.00"`) {
		t.Errorf("missing horizontal bar in:\n%s", svg)
	}
}

func TestRenderSVGSelection(t *testing.T) {
	root, _, b, _ := family()

	svg := string(RenderSVG(root, WithSelected(b.ID)))
	if strings.Count(svg, `class="node selected"`) != 1 {
		t.Fatal("expected exactly one selected node")
	}
	if !strings.Contains(svg, `<g class="node selected" id="node-2" data-id="2">`) {
		t.Error("wrong node selected")
	}
	if !strings.Contains(svg, `fill="red"`) {
		t.Error("plain style should fill the selection red")
	}

	if strings.Contains(string(RenderSVG(root)), "selected") {
		t.Error("nothing should be selected by default")
	}
}

func TestRenderSVGMaxDepth(t *testing.T) {
	root, _, _, _ := family()

	svg := string(RenderSVG(root, WithMaxDepth(1)))
	if strings.Contains(svg, ">grand<") {
		t.Error("node below the depth cap was drawn")
	}
	// The frame ends below level 1 (y=160), not below the grandchild.
	if !strings.Contains(svg, `viewBox="0 0 240.0 180.0"`) {
		t.Errorf("frame includes clipped nodes:\n%s", firstLine(svg))
	}
	if got := strings.Count(svg, `class="connector"`); got != 4 {
		t.Errorf("connectors = %d, want 4", got)
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	root := tree.NewGenerator().NewNode(`<Aegon & "Rhaenys">`)
	tidy.Layout(root, tidy.DefaultConfig())

	svg := string(RenderSVG(root))
	if strings.Contains(svg, "<Aegon") {
		t.Error("label not escaped")
	}
	if !strings.Contains(svg, "&lt;Aegon &amp;") {
		t.Errorf("escaped label missing:\n%s", svg)
	}
}

func TestRenderSVGInteraction(t *testing.T) {
	root, _, _, _ := family()
	if strings.Contains(string(RenderSVG(root)), "<script") {
		t.Error("script emitted without WithInteraction")
	}
	svg := string(RenderSVG(root, WithInteraction(), WithStyle(Soft{})))
	if !strings.Contains(svg, "tidytree:select") {
		t.Error("click handler missing")
	}
	if !strings.Contains(svg, `rx="6"`) {
		t.Error("soft style not applied")
	}
}

func TestRenderSVGNil(t *testing.T) {
	svg := string(RenderSVG(nil, WithPadding(0)))
	if !strings.Contains(svg, `viewBox="0 0 0.0 0.0"`) || strings.Contains(svg, `class="node"`) {
		t.Errorf("unexpected output for empty tree:\n%s", svg)
	}
}

func TestStyleByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Style
		wantErr bool
	}{
		{"", Plain{}, false},
		{"plain", Plain{}, false},
		{"soft", Soft{}, false},
		{"handdrawn", nil, true},
	}
	for _, tt := range tests {
		got, err := StyleByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("StyleByName(%q) error = %v", tt.name, err)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("StyleByName(%q) code = %v", tt.name, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("StyleByName(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}

func TestFontSizeAndTruncation(t *testing.T) {
	short := Box{Label: "Maekar I", W: 100, H: 50}
	if got := fontSize(short); got != fontSizeMax {
		t.Errorf("fontSize(short) = %v, want %v", got, fontSizeMax)
	}

	long := Box{Label: strings.Repeat("Jaehaerys ", 10), W: 100, H: 50}
	size := fontSize(long)
	if size != fontSizeMin {
		t.Errorf("fontSize(long) = %v, want %v", size, fontSizeMin)
	}
	got := truncateLabel(long.Label, long.W, size)
	if !strings.HasSuffix(got, "..") || len([]rune(got)) >= len([]rune(long.Label)) {
		t.Errorf("truncateLabel = %q", got)
	}
	if got := truncateLabel("Daenerys", 100, fontSizeMax); got != "Daenerys" {
		t.Errorf("short label truncated to %q", got)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
