// Package chart is the interactive controller behind the editor and the
// browser view: it owns a tree, its id generator, a selected node and the
// layout configuration, and re-runs the layout after every change.
//
// # Operations
//
//   - [Chart.AddChild] appends "Child of <label>" under the selection
//   - [Chart.Remove] detaches the selection and selects its parent; the root
//     cannot be removed
//   - [Chart.ZoomIn] and [Chart.ZoomOut] scale every node, and the size of
//     nodes created later, by [ZoomInFactor] or [ZoomOutFactor]
//   - [Chart.SelectAt] selects the node whose box contains a point
//
// A Chart is safe for concurrent use. Readers that need a consistent view of
// the tree (renderers, encoders) go through [Chart.View].
package chart
