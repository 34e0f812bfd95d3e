package tree

// Walk visits root and its descendants in pre-order: a node first, then each
// child's subtree in child order. Returning false from fn skips the node's
// children.
func Walk(root *Node, fn func(*Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, c := range root.children {
		Walk(c, fn)
	}
}

// WalkDepth is [Walk] limited to nodes at most maxDepth levels below root.
// A maxDepth of zero or less means no limit.
func WalkDepth(root *Node, maxDepth int, fn func(*Node) bool) {
	var visit func(n *Node, level int)
	visit = func(n *Node, level int) {
		if !fn(n) || (maxDepth > 0 && level >= maxDepth) {
			return
		}
		for _, c := range n.children {
			visit(c, level+1)
		}
	}
	if root != nil {
		visit(root, 0)
	}
}

// Flatten returns the pre-order sequence of every node reachable from root.
// The slice is freshly allocated on every call.
func Flatten(root *Node) []*Node {
	var nodes []*Node
	Walk(root, func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Count returns the number of nodes reachable from root.
func Count(root *Node) int {
	count := 0
	Walk(root, func(*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels below and including root, or 0 for nil.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	deepest := 0
	for _, c := range root.children {
		deepest = max(deepest, Depth(c))
	}
	return deepest + 1
}

// FindByID searches root's subtree depth-first and returns the first node in
// pre-order with the given id. The boolean is false when nothing matches.
func FindByID(root *Node, id int) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.ID == id {
		return root, true
	}
	for _, c := range root.children {
		if n, ok := FindByID(c, id); ok {
			return n, true
		}
	}
	return nil, false
}

// Scale multiplies the size of every node in root's subtree by factor.
func Scale(root *Node, factor float64) {
	Walk(root, func(n *Node) bool {
		n.Size.Width *= factor
		n.Size.Height *= factor
		return true
	})
}
