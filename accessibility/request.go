package accessibility

// ActionData is the optional payload of an action request. At most one
// field is set, matching the action kind: a replacement string for
// SetValue/ReplaceSelectedText, a number for numeric SetValue, or a
// selection span for SetTextSelection.
type ActionData struct {
	Value        *string
	NumericValue *float64
	Selection    *TextSelection
}

// StringData wraps s as an action payload.
func StringData(s string) *ActionData {
	return &ActionData{Value: &s}
}

// NumericData wraps v as an action payload.
func NumericData(v float64) *ActionData {
	return &ActionData{NumericValue: &v}
}

// SelectionData wraps sel as an action payload.
func SelectionData(sel TextSelection) *ActionData {
	return &ActionData{Selection: &sel}
}

// ActionRequest is an inbound command from the accessibility consumer.
// Requests may originate on a foreign transport thread; they are applied
// to widget state only after being marshaled onto the UI thread.
type ActionRequest struct {
	Action Action
	Target NodeID
	Data   *ActionData
}
