package bridge

import (
	"github.com/odvcencio/accessbridge/accessibility"
	"github.com/odvcencio/accessbridge/widget"
)

// Collect walks the hierarchy beneath root depth-first and returns the
// node set for everything under it, plus the root's child-id list in
// traversal order. The root's own node is built by the caller, since it
// needs the finished child-id list as input.
//
// Children are collected bottom-up: a parent's node is built only after
// its surviving children have ids. Widgets matching a subtree exclusion
// vanish with their descendants; individually excluded or unrecognized
// widgets vanish alone, with their collected children promoted to the
// nearest surviving ancestor.
func Collect(root widget.Container, excl *ExclusionSet) (map[accessibility.NodeID]accessibility.Node, []accessibility.NodeID) {
	nodes := make(map[accessibility.NodeID]accessibility.Node)
	var top []accessibility.NodeID
	for _, child := range root.Children() {
		collectChild(child, excl, nodes, &top)
	}
	return nodes, top
}

func collectChild(w widget.Widget, excl *ExclusionSet, nodes map[accessibility.NodeID]accessibility.Node, out *[]accessibility.NodeID) {
	if w == nil || excl.SkipsSubtree(w) {
		return
	}

	var childIDs []accessibility.NodeID
	if c, ok := w.(widget.Container); ok {
		for _, child := range c.Children() {
			collectChild(child, excl, nodes, &childIDs)
		}
	}
	childIDs = append(childIDs, expandItems(w, nodes)...)

	if excl.Excludes(w) {
		*out = append(*out, childIDs...)
		return
	}
	node, ok := BuildNode(w, childIDs)
	if !ok {
		*out = append(*out, childIDs...)
		return
	}
	nodes[node.ID] = node
	*out = append(*out, node.ID)
}

// expandItems synthesizes one node per entry of a composite chooser.
// Item ids come from the item's own runtime handle, not the owner's, so
// every entry is independently addressable. The synthesized ids become
// siblings of the owner's regular children.
func expandItems(w widget.Widget, nodes map[accessibility.NodeID]accessibility.Node) []accessibility.NodeID {
	holder, ok := w.(widget.ItemHolder)
	if !ok {
		return nil
	}
	var itemRole func(widget.Item) accessibility.Role
	switch w.Kind() {
	case widget.KindChoice:
		itemRole = func(widget.Item) accessibility.Role { return accessibility.RoleListBoxOption }
	case widget.KindMenuBar, widget.KindMenuButton:
		itemRole = func(item widget.Item) accessibility.Role {
			if item.Kind() == widget.ItemSubmenu {
				return accessibility.RoleMenu
			}
			return accessibility.RoleMenuItem
		}
	default:
		return nil
	}

	items := holder.Items()
	ids := make([]accessibility.NodeID, 0, len(items))
	for i, item := range items {
		node := accessibility.Node{
			ID:       accessibility.NodeID(item.Handle()),
			Role:     itemRole(item),
			Label:    item.Label(),
			PosInSet: i + 1,
			SetSize:  len(items),
		}
		switch item.Kind() {
		case widget.ItemCheck, widget.ItemRadio:
			state := accessibility.TristateFalse
			if item.Checked() {
				state = accessibility.TristateTrue
			}
			node.Toggled = &state
		}
		nodes[node.ID] = node
		ids = append(ids, node.ID)
	}
	return ids
}
