package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/tidytree/pkg/errors"
	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/render/nodelink"
	"github.com/matzehuels/tidytree/pkg/render/orgchart"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Render generates output artifacts in the requested formats from a tree
// that has already been laid out.
func Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, root, opts)
	}
	return renderOrgChart(ctx, root, opts)
}

// renderOrgChart generates org chart outputs.
func renderOrgChart(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = orgchart.RenderSVG(root, svgOpts...)
		case FormatPNG:
			data, err = orgchart.RenderPNG(root, orgchart.WithPNGSVGOptions(svgOpts...), orgchart.WithScale(opts.Scale))
		case FormatPDF:
			data, err = orgchart.RenderPDF(root, orgchart.WithPDFSVGOptions(svgOpts...))
		default:
			data, err = renderShared(ctx, root, format, opts)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates Graphviz outputs.
func renderNodelink(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	nlOpts := nodelinkOptions(opts)
	dot := nodelink.ToDOT(root, nlOpts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot, nlOpts)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, nlOpts, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot, nlOpts)
		default:
			data, err = renderShared(ctx, root, format, opts)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderShared handles the formats that do not depend on the visualization
// type.
func renderShared(_ context.Context, root *tree.Node, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := pio.WriteJSON(root, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(root, nodelinkOptions(opts))), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// buildSVGOptions builds org chart rendering options.
func buildSVGOptions(opts Options) ([]orgchart.SVGOption, error) {
	style, err := orgchart.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []orgchart.SVGOption{
		orgchart.WithStyle(style),
		orgchart.WithMaxDepth(opts.Layout.MaxDepth),
	}
	if id, ok := opts.Selection(); ok {
		svgOpts = append(svgOpts, orgchart.WithSelected(id))
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, orgchart.WithInteraction())
	}
	return svgOpts, nil
}

func nodelinkOptions(opts Options) nodelink.Options {
	return nodelink.Options{
		Pinned:   opts.Pinned,
		Detailed: opts.Detailed,
		MaxDepth: opts.Layout.MaxDepth,
	}
}
