package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/render"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// pointsPerInch converts layout units (points) to Graphviz node sizes.
const pointsPerInch = 72.0

// Options configures node-link diagram generation.
type Options struct {
	// Pinned places nodes at their computed positions. When false Graphviz
	// computes its own ranking.
	Pinned bool

	// Detailed adds the node id and position to each label.
	Detailed bool

	// MaxDepth limits output to levels 0..MaxDepth. Zero or less means all.
	MaxDepth int
}

// Engine returns the Graphviz layout engine the options call for.
func (o Options) Engine() graphviz.Layout {
	if o.Pinned {
		return graphviz.NEATO
	}
	return graphviz.DOT
}

// ToDOT converts the tree under root to Graphviz DOT.
// The result can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG]
// with the same options.
func ToDOT(root *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
		buf.WriteString("  inputscale=72;\n")
		buf.WriteString("  overlap=true;\n")
		buf.WriteString("  splines=line;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
		buf.WriteString("  ranksep=0.5;\n")
		buf.WriteString("  nodesep=0.3;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fillcolor=white, fontsize=14, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	var edges []string
	var visit func(n *tree.Node, level int)
	visit = func(n *tree.Node, level int) {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n), strings.Join(fmtAttrs(n, opts), ", "))
		if opts.MaxDepth > 0 && level >= opts.MaxDepth {
			return
		}
		for _, c := range n.Children() {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeID(n), nodeID(c)))
			visit(c, level+1)
		}
	}
	if root != nil {
		visit(root, 0)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n *tree.Node) string { return "n" + strconv.Itoa(n.ID) }

func fmtLabel(n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nid: %d\n(%g, %g)", n.Label, n.ID, n.Position.X, n.Position.Y)
}

func fmtAttrs(n *tree.Node, opts Options) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
		fmt.Sprintf("width=%.3f", n.Size.Width/pointsPerInch),
		fmt.Sprintf("height=%.3f", n.Size.Height/pointsPerInch),
	}
	if opts.Pinned {
		// Graphviz y grows upwards; the layout's grows downwards.
		cx := n.Position.X + n.Size.Width/2
		cy := n.Position.Y + n.Size.Height/2
		attrs = append(attrs, fmt.Sprintf("pos=\"%.2f,%.2f!\"", cx, -cy))
	}
	return attrs
}

// RenderSVG renders DOT to SVG using Graphviz with the engine opts selects.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(opts.Engine())

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one sized
// in pixels so browsers and rsvg-convert agree on the dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders DOT as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string, opts Options) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, opts)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders DOT as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, opts Options, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, opts)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
