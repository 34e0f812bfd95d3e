// Package orgchart renders a laid-out tree as an organization chart in SVG.
//
// # Overview
//
// Every node is drawn as a box at its computed position with its label
// centered inside. Parents connect to their children with elbow connectors:
// a drop from the parent's bottom edge, a horizontal bar spanning the
// children, and a stub down to each child's top edge. The bar sits midway
// between the parent's bottom and the children's level.
//
// Run a layout first; the renderer reads positions and never changes them.
//
//	tidy.Layout(root, tidy.DefaultConfig())
//	svg := orgchart.RenderSVG(root, orgchart.WithSelected(selectedID))
//
// # Styles
//
// A [Style] controls how boxes, connectors and labels are drawn. [Plain]
// draws black outlines on white with the selection filled red; [Soft] uses
// rounded boxes and muted colors. Use [StyleByName] to resolve a style from
// user input.
//
// # Options
//
//   - [WithStyle]: visual style (default [Plain])
//   - [WithSelected]: highlight one node by id
//   - [WithMaxDepth]: draw only levels up to a depth, matching a layout that
//     was run with the same cap
//   - [WithPadding]: margin added right of and below the drawing
//   - [WithInteraction]: hover styling and a click script for browsers
//
// PDF and PNG output go through [RenderPDF] and [RenderPNG], which need
// rsvg-convert.
package orgchart
