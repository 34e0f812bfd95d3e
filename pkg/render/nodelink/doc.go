// Package nodelink renders trees as node-link diagrams through Graphviz.
//
// # Overview
//
// Where the org chart renderer draws boxes itself, this package hands the
// tree to Graphviz as DOT. Two modes are supported:
//
//   - Pinned: every node is placed at its computed layout position and the
//     neato engine only routes edges. The picture matches the org chart
//     geometry, and the DOT can be post-processed with Graphviz tools.
//   - Ranked: positions are ignored and the dot engine ranks the tree on its
//     own, top to bottom. Useful for comparing against the tidy layout.
//
// # Usage
//
//	tidy.Layout(root, cfg)
//	opts := nodelink.Options{Pinned: true}
//	dot := nodelink.ToDOT(root, opts)
//	svg, err := nodelink.RenderSVG(ctx, dot, opts)
//
// For PDF or PNG output, use [RenderPDF] and [RenderPNG], which convert the
// SVG with rsvg-convert.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
