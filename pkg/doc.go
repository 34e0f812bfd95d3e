// Package pkg provides the core libraries for tidytree, a tidy tree layout
// engine and org chart renderer.
//
// # Overview
//
// tidytree positions the nodes of an ordered tree so that parents sit centered
// above their children, siblings keep a fixed gap, and neighboring subtrees
// never overlap. The pkg directory is organized into three areas:
//
//  1. [tree] and [tidy] - The node model and the layout algorithm
//  2. [chart], [io] and [render] - Editing, serialization and drawing
//  3. [pipeline], [cache], [observability] and [errors] - Orchestration
//
// # Architecture
//
// The typical data flow through tidytree:
//
//	TOML/JSON tree file
//	         ↓
//	    [io] package (read labels and children)
//	         ↓
//	    [tidy] package (assign x/y positions)
//	         ↓
//	    [render/orgchart] or [render/nodelink] (draw)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT output
//
// # Quick Start
//
// Build a tree by hand, lay it out and render it:
//
//	gen := tree.NewGenerator()
//	root := gen.NewNode("Maekar I")
//	root.AddChild(gen.NewNode("Aerion"))
//	aegon := gen.NewNode("Aegon V")
//	root.AddChild(aegon)
//	aegon.AddChild(gen.NewNode("Duncan"))
//
//	tidy.Layout(root, tidy.DefaultConfig())
//	svg := orgchart.RenderSVG(root, orgchart.WithSelected(aegon.ID))
//
// # Main Packages
//
// [tree] - Nodes with parent, child and sibling links plus the bookkeeping
// fields the layout fills in. Ids come from a [tree.Generator].
//
// [tidy] - The Walker layout. A post-order pass computes preliminary
// positions and spreads subtrees apart, a pre-order pass turns them into
// absolute coordinates.
//
// [chart] - A laid-out tree with a selection. Edits relayout the tree and are
// safe for concurrent use by the editor and the HTTP server.
//
// [io] - Reading and writing trees as JSON or TOML.
//
// [render/orgchart] - Boxes and elbow connectors in SVG, with PDF and PNG via
// [render].
//
// [render/nodelink] - Graphviz DOT output, optionally pinned to the computed
// positions.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [pipeline] - The parse, layout and render steps shared by the CLI and the
// server, with artifact caching.
//
// [cache] - Content-addressed cache backends (file and null) and key
// derivation.
//
// [observability] - Hook points for logging pipeline, cache and HTTP events.
//
// [errors] - Coded errors mapped to user messages and HTTP statuses.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/tidy/...       # Specific package
//	go test -run Example ./...   # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/tree
// [tidy]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/tidy
// [chart]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/chart
// [io]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/render
// [render/orgchart]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/render/orgchart
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/errors
// [tree.Generator]: https://pkg.go.dev/github.com/matzehuels/tidytree/pkg/tree#Generator
package pkg
