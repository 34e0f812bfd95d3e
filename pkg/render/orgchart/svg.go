package orgchart

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tidytree/pkg/tree"
)

// DefaultPadding is the margin added right of and below the drawing.
const DefaultPadding = 20.0

const nodeInteractionCSS = `
    .node { cursor: pointer; }
    .node:hover rect { stroke-width: 3; }`

// The script raises a "tidytree:select" event so that a hosting page can
// decide what a click means.
const nodeInteractionJS = `
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('click', () => {
        const id = Number(el.dataset.id);
        document.dispatchEvent(new CustomEvent('tidytree:select', { detail: { id } }));
      });
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       Style
	selected    int
	hasSelected bool
	maxDepth    int
	padding     float64
	interactive bool
}

// WithStyle sets the visual style.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithSelected highlights the node with the given id.
func WithSelected(id int) SVGOption {
	return func(r *svgRenderer) { r.selected, r.hasSelected = id, true }
}

// WithMaxDepth limits drawing to levels 0..depth. Zero or less draws all.
func WithMaxDepth(depth int) SVGOption { return func(r *svgRenderer) { r.maxDepth = depth } }

// WithPadding sets the right and bottom margin.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithInteraction adds hover styling and a click handler.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: Plain{}, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws the tree under root at its current positions.
func RenderSVG(root *tree.Node, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	boxes, segments := r.collect(root)

	bounds := tree.Bounds(root, r.maxDepth)
	width := max(bounds.MaxX, 0) + r.padding
	height := max(bounds.MaxY, 0) + r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	r.style.RenderDefs(&buf)
	buf.WriteString(`  <g class="connectors">` + "\n")
	for _, s := range segments {
		r.style.RenderConnector(&buf, s)
	}
	buf.WriteString("  </g>\n")

	for _, b := range boxes {
		class := "node"
		if b.Selected {
			class += " selected"
		}
		fmt.Fprintf(&buf, `  <g class="%s" id="node-%d" data-id="%d">`+"\n", class, b.ID, b.ID)
		r.style.RenderBox(&buf, b)
		r.style.RenderText(&buf, b)
		buf.WriteString("  </g>\n")
	}

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", nodeInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", nodeInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// collect gathers boxes in pre-order and the connectors between drawn nodes.
func (r svgRenderer) collect(root *tree.Node) ([]Box, []Segment) {
	var (
		boxes    []Box
		segments []Segment
	)
	var visit func(n *tree.Node, level int)
	visit = func(n *tree.Node, level int) {
		boxes = append(boxes, r.box(n))
		if n.IsLeaf() || (r.maxDepth > 0 && level >= r.maxDepth) {
			return
		}
		segments = append(segments, elbow(n)...)
		for _, c := range n.Children() {
			visit(c, level+1)
		}
	}
	if root != nil {
		visit(root, 0)
	}
	return boxes, segments
}

func (r svgRenderer) box(n *tree.Node) Box {
	return Box{
		ID:       n.ID,
		Label:    n.Label,
		X:        n.Position.X,
		Y:        n.Position.Y,
		W:        n.Size.Width,
		H:        n.Size.Height,
		CX:       n.Position.X + n.Size.Width/2,
		CY:       n.Position.Y + n.Size.Height/2,
		Selected: r.hasSelected && n.ID == r.selected,
	}
}

// elbow connects n to its children. All children share a level, so the
// first child's top edge is the level's top.
func elbow(n *tree.Node) []Segment {
	first, last := n.FirstChild(), n.LastChild()
	bottom := n.Position.Y + n.Size.Height
	barY := (bottom + first.Position.Y) / 2
	cx := n.Position.X + n.Size.Width/2

	segments := []Segment{{X1: cx, Y1: bottom, X2: cx, Y2: barY}}
	if first != last {
		segments = append(segments, Segment{
			X1: first.Position.X + first.Size.Width/2, Y1: barY,
			X2: last.Position.X + last.Size.Width/2, Y2: barY,
		})
	}
	for _, c := range n.Children() {
		ccx := c.Position.X + c.Size.Width/2
		segments = append(segments, Segment{X1: ccx, Y1: barY, X2: ccx, Y2: c.Position.Y})
	}
	return segments
}
