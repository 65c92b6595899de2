// Package widget declares the contract this module consumes from the
// host widget toolkit: a closed kind enumeration plus small capability
// interfaces probed by type assertion. The toolkit owns geometry, event
// dispatch, and rendering; this package only names what the bridge
// needs to read and mutate.
package widget

import "fmt"

// Kind is the closed set of widget kinds the bridge recognizes.
// Widgets reporting a kind outside this set are invisible to the
// accessibility tree; that is normal, not an error.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Containers.
	KindWindow
	KindGroup
	KindFlex
	KindScrollView
	KindTable
	KindTree

	// Buttons.
	KindButton
	KindCheckButton
	KindRadioButton
	KindToggleButton

	// Static text and images.
	KindLabel
	KindOutput
	KindMultilineOutput

	// Text entry.
	KindInput
	KindIntInput
	KindFloatInput
	KindMultilineInput
	KindTextDisplay
	KindTextEditor
	KindTerminal

	// Range family.
	KindSlider
	KindDial
	KindCounter
	KindRoller
	KindValueInput
	KindValueOutput
	KindScrollbar
	KindProgress

	// Composite choosers, expanded into synthetic item nodes.
	KindMenuBar
	KindChoice
	KindMenuButton

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:         "unknown",
	KindWindow:          "window",
	KindGroup:           "group",
	KindFlex:            "flex",
	KindScrollView:      "scrollview",
	KindTable:           "table",
	KindTree:            "tree",
	KindButton:          "button",
	KindCheckButton:     "checkbutton",
	KindRadioButton:     "radiobutton",
	KindToggleButton:    "togglebutton",
	KindLabel:           "label",
	KindOutput:          "output",
	KindMultilineOutput: "multilineoutput",
	KindInput:           "input",
	KindIntInput:        "intinput",
	KindFloatInput:      "floatinput",
	KindMultilineInput:  "multilineinput",
	KindTextDisplay:     "textdisplay",
	KindTextEditor:      "texteditor",
	KindTerminal:        "terminal",
	KindSlider:          "slider",
	KindDial:            "dial",
	KindCounter:         "counter",
	KindRoller:          "roller",
	KindValueInput:      "valueinput",
	KindValueOutput:     "valueoutput",
	KindScrollbar:       "scrollbar",
	KindProgress:        "progress",
	KindMenuBar:         "menubar",
	KindChoice:          "choice",
	KindMenuButton:      "menubutton",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a lowercase kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := Kind(1); k < numKinds; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown widget kind %q", name)
}
