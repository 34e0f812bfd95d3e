// Package io reads and writes trees as nested JSON or TOML documents.
//
// # Format
//
// A document is a single node object. Children nest recursively:
//
//	{
//	  "label": "Maekar I",
//	  "children": [
//	    {"label": "Aerion"},
//	    {"label": "Aegon V", "width": 140, "children": [{"label": "Duncan"}]}
//	  ]
//	}
//
// The TOML form uses the same keys, with children as arrays of tables:
//
//	label = "Maekar I"
//
//	[[children]]
//	label = "Aerion"
//
//	[[children]]
//	label = "Aegon V"
//	width = 140
//
//	  [[children.children]]
//	  label = "Duncan"
//
// # Node Fields
//
// Required:
//   - label: Display text of the node
//
// Optional:
//   - width, height: Node size; omitted or zero values take the generator's
//     default size
//   - children: Child nodes in left-to-right order
//
// Written documents also carry id, x and y so that external tools can use a
// computed layout without running one. These fields are ignored on read:
// identifiers always come from the [tree.Generator] passed in, and positions
// are only meaningful after a layout. Layout scratch state is never written.
//
// # Import
//
// [ImportFile] picks the decoder from the file extension (.json or .toml).
// [ReadJSON] and [ReadTOML] decode from any io.Reader.
//
//	gen := tree.NewGenerator()
//	root, err := io.ImportFile("targaryen.toml", gen)
//
// # Export
//
// [WriteJSON] and [WriteTOML] encode a tree; [ExportFile] writes to a path and
// picks the encoder from its extension.
//
// [tree.Generator]: github.com/matzehuels/tidytree/pkg/tree.Generator
package io
