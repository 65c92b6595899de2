package bridge

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/accessbridge/accessibility"
)

// Dump writes an indented, human-readable rendering of a tree snapshot,
// for debugging and example output. Rows align the value column across
// the whole tree; widths are display widths, so wide runes line up.
func Dump(w io.Writer, u accessibility.TreeUpdate) error {
	root := u.Root
	if root == 0 {
		for id, node := range u.Nodes {
			if node.Role == accessibility.RoleWindow {
				root = id
				break
			}
		}
	}
	if root == 0 {
		_, err := fmt.Fprintln(w, "(no root)")
		return err
	}

	type row struct {
		head  string
		node  accessibility.Node
		focus bool
	}
	var rows []row
	visited := make(map[accessibility.NodeID]bool)

	var walk func(id accessibility.NodeID, depth int)
	walk = func(id accessibility.NodeID, depth int) {
		if visited[id] {
			return
		}
		visited[id] = true
		node, ok := u.Nodes[id]
		if !ok {
			return
		}
		head := strings.Repeat("  ", depth) + node.Role.String()
		if node.Label != "" {
			head += fmt.Sprintf(" %q", node.Label)
		}
		rows = append(rows, row{head: head, node: node, focus: id == u.Focus})
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)

	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.head); w > width {
			width = w
		}
	}

	for _, r := range rows {
		line := r.head + strings.Repeat(" ", width-runewidth.StringWidth(r.head))
		if r.node.Value != "" {
			line += fmt.Sprintf("  = %q", r.node.Value)
		} else if n := r.node.Numeric; n != nil {
			line += fmt.Sprintf("  = %g [%g..%g]", n.Value, n.Min, n.Max)
		} else if t := r.node.Toggled; t != nil {
			line += "  = " + t.String()
		}
		if r.focus {
			line += "  <focus>"
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
