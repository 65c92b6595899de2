package accessibility

import "strings"

// Action identifies one operation a consumer may request on a node.
type Action uint8

const (
	ActionFocus Action = iota
	ActionClick
	ActionSetValue
	ActionSetTextSelection
	ActionReplaceSelectedText
	ActionScrollIntoView
	ActionScrollToPoint
	ActionScrollUp
	ActionScrollDown

	numActions
)

var actionNames = [numActions]string{
	ActionFocus:               "focus",
	ActionClick:               "click",
	ActionSetValue:            "setvalue",
	ActionSetTextSelection:    "settextselection",
	ActionReplaceSelectedText: "replaceselectedtext",
	ActionScrollIntoView:      "scrollintoview",
	ActionScrollToPoint:       "scrolltopoint",
	ActionScrollUp:            "scrollup",
	ActionScrollDown:          "scrolldown",
}

// String returns the lowercase action name.
func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return "unknown"
}

// ActionSet is the set of actions a node supports, as a bitmask.
// The zero value is the empty set.
type ActionSet uint16

// Actions builds a set from individual actions.
func Actions(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns the set extended with a.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// IsEmpty reports whether no actions are set.
func (s ActionSet) IsEmpty() bool {
	return s == 0
}

// String lists the set members joined by "|".
func (s ActionSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for a := Action(0); a < numActions; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "|")
}
