// Package tree provides the ordered, arbitrary-arity tree that tidytree lays
// out and renders.
//
// # Overview
//
// A [Node] owns its children exclusively: attaching a node with
// [Node.AddChild] appends it to the parent's ordered child list, and
// detaching it with [Destroy] drops the node together with its whole
// subtree. Child order is meaningful. It defines left-to-right drawing order
// and which nodes are siblings.
//
// Nodes are created detached by a [Generator], which hands out monotonically
// increasing identifiers. There is no package-level counter; whoever builds a
// tree owns its generator and tests can [Generator.Reset] it to get
// deterministic ids.
//
//	gen := tree.NewGenerator()
//	root := gen.NewNode("Maekar I")
//	root.AddChild(gen.NewNode("Aerion"))
//	root.AddChild(gen.NewNode("Aegon V"))
//
// # Layout State
//
// Every node carries a [Position] and a [Scratch] block. Both are written by
// the layout engine (package tidy) and are only meaningful immediately after a
// layout pass. Scratch holds the preliminary x, the subtree modifier and the
// same-depth neighbor links. Neighbors are the previous and next node met at
// the same depth during the post-order pass and may belong to a different
// parent; [Node.LeftSibling] and [Node.RightSibling] narrow them to nodes that
// share this node's parent. Scratch is never serialized.
//
// # Lookup and Traversal
//
// [Flatten] returns the pre-order node sequence, [FindByID] performs a
// pre-order search by identifier and [Walk] visits nodes in pre-order.
// [HitTest] maps a point to the first node whose box strictly contains it.
// [WalkDepth], [HitTest] and [Bounds] take the layout's depth cap so nodes the
// layout skipped are left out.
//
// # Concurrency
//
// Trees are not safe for concurrent use. Callers sequence structural edits,
// layout and rendering as separate phases.
package tree
