package accessibility

import "fmt"

// TreeUpdate is one published snapshot: a node set, an optional root
// designation, and the id of the currently focused node. The consumer
// retains prior snapshots, so an update's child references may resolve
// against nodes it already holds.
type TreeUpdate struct {
	Nodes map[NodeID]Node

	// Root designates the tree root. Zero means no structural change;
	// it must be set on the first publish. A non-zero Root must name a
	// node with RoleWindow.
	Root NodeID

	// Focus is the currently focused node, falling back to the root
	// when nothing holds input focus.
	Focus NodeID
}

// Validate checks the update's structural invariants against the
// consumer's cumulative node state (nil for a first publish). It
// reports the first violation found.
func (u TreeUpdate) Validate(prior map[NodeID]Node) error {
	known := func(id NodeID) bool {
		if _, ok := u.Nodes[id]; ok {
			return true
		}
		_, ok := prior[id]
		return ok
	}

	if u.Root != 0 {
		root, ok := u.Nodes[u.Root]
		if !ok {
			if root, ok = prior[u.Root]; !ok {
				return fmt.Errorf("root %#x not present in node set", uint64(u.Root))
			}
		}
		if root.Role != RoleWindow {
			return fmt.Errorf("root %#x has role %s, want window", uint64(u.Root), root.Role)
		}
	}
	for id, node := range u.Nodes {
		if node.ID != id {
			return fmt.Errorf("node keyed %#x carries id %#x", uint64(id), uint64(node.ID))
		}
		for _, child := range node.Children {
			if !known(child) {
				return fmt.Errorf("node %#x references unknown child %#x", uint64(id), uint64(child))
			}
		}
	}
	if u.Focus != 0 && !known(u.Focus) {
		return fmt.Errorf("focus %#x not present in node set", uint64(u.Focus))
	}
	return nil
}
