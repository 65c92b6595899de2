// Package accessibility defines the value types exchanged with an
// assistive-technology consumer: semantic roles, snapshot nodes, tree
// updates, and inbound action requests. Everything here is a plain
// immutable value; live widget state never crosses this boundary.
package accessibility

// Role classifies a node for assistive technology.
// The set is closed: widgets that map to no role are omitted
// from the tree rather than reported with a fallback.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleButton
	RoleCheckBox
	RoleRadioButton
	RoleToggleButton
	RoleWindow
	RoleLabel
	RoleImage
	RoleTextInput
	RoleMultilineTextInput
	RoleParagraph
	RoleTerminal
	RoleSlider
	RoleScrollBar
	RoleMenuBar
	RoleMenu
	RoleMenuItem
	RoleComboBox
	RoleListBoxOption
	RoleTable
	RoleTree
	RoleScrollView
	RoleGroup
	RoleProgressIndicator
)

var roleNames = map[Role]string{
	RoleButton:             "button",
	RoleCheckBox:           "checkbox",
	RoleRadioButton:        "radiobutton",
	RoleToggleButton:       "togglebutton",
	RoleWindow:             "window",
	RoleLabel:              "label",
	RoleImage:              "image",
	RoleTextInput:          "textinput",
	RoleMultilineTextInput: "multilinetextinput",
	RoleParagraph:          "paragraph",
	RoleTerminal:           "terminal",
	RoleSlider:             "slider",
	RoleScrollBar:          "scrollbar",
	RoleMenuBar:            "menubar",
	RoleMenu:               "menu",
	RoleMenuItem:           "menuitem",
	RoleComboBox:           "combobox",
	RoleListBoxOption:      "listboxoption",
	RoleTable:              "table",
	RoleTree:               "tree",
	RoleScrollView:         "scrollview",
	RoleGroup:              "group",
	RoleProgressIndicator:  "progressindicator",
}

// String returns the lowercase role name.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
