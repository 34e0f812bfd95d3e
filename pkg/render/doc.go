// Package render turns laid-out trees into images.
//
// # Overview
//
//   - Organization charts drawn from computed positions (in [orgchart] subpackage)
//   - Node-link diagrams through Graphviz (in [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF/PNG) in this package
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both renderers use them.
//
//	svg := orgchart.RenderSVG(root, orgchart.WithSelected(3))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// When rsvg-convert is missing, conversion fails with an UNSUPPORTED error;
// [Available] checks for it up front.
//
// [orgchart]: github.com/matzehuels/tidytree/pkg/render/orgchart
// [nodelink]: github.com/matzehuels/tidytree/pkg/render/nodelink
package render
