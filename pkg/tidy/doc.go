// Package tidy computes tidy-tree coordinates for a [tree.Node] hierarchy.
//
// # Overview
//
// The layout follows the Walker extension of the Reingold-Tilford algorithm:
// subtrees are treated as rigid units that never overlap, parents are
// centered over their children, and subtrees that end up next to each other
// at the same depth without being siblings are pushed apart.
//
// [Layout] runs three passes over the tree:
//
//  1. First walk (post-order). Each node gets a preliminary x relative to its
//     subtree and is threaded to the previous node at its depth. A node with
//     a left sibling is placed next to it; the difference between that place
//     and the center of its children becomes the node's modifier, and
//     apportionment spreads any overlap with subtrees further left across the
//     intervening siblings.
//  2. Second walk (pre-order). Modifiers are accumulated down the tree to
//     turn preliminary x values into absolute positions. Each level's vertical
//     offset is the previous level's tallest node plus the level separation.
//  3. Normalization. If any node landed left of zero, the global x offset is
//     increased by that amount and the second walk is repeated, so the tree is
//     flush against the left edge.
//
// # Configuration
//
// [Config] holds the separations and the depth cap. [DefaultConfig] matches
// the defaults used by the CLI:
//
//	cfg := tidy.DefaultConfig()
//	cfg.SiblingSeparation = 30
//	tidy.Layout(root, cfg)
//
// Nodes deeper than [Config.MaxDepth] are left out of every pass and keep
// whatever position they had before.
//
// # State
//
// Layout keeps no state between calls. All working values live in the
// nodes' [tree.Scratch] fields, which are reset on every call, so repeated
// layouts of an unchanged tree produce identical positions.
//
// [tree.Node]: github.com/matzehuels/tidytree/pkg/tree.Node
// [tree.Scratch]: github.com/matzehuels/tidytree/pkg/tree.Scratch
package tidy
