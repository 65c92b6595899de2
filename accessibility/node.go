package accessibility

// NodeID uniquely and stably denotes one live widget (or one synthesized
// menu/choice entry) for as long as it exists. IDs are derived from the
// widget's runtime identity handle, never minted from a counter, so the
// same widget always yields the same id. Zero is never a valid id.
type NodeID uint64

// Tristate is a boolean that also admits a mixed state, for
// check boxes driving partially-checked groups.
type Tristate uint8

const (
	TristateFalse Tristate = iota
	TristateTrue
	TristateMixed
)

// String returns "false", "true", or "mixed".
func (t Tristate) String() string {
	switch t {
	case TristateTrue:
		return "true"
	case TristateMixed:
		return "mixed"
	default:
		return "false"
	}
}

// TextPosition is a character offset inside the text of one node.
type TextPosition struct {
	Node   NodeID
	Offset int
}

// TextSelection is a directed selection span. Anchor is where the
// selection started; Focus is where the caret sits. Anchor == Focus
// describes a collapsed selection (a bare caret).
type TextSelection struct {
	Anchor TextPosition
	Focus  TextPosition
}

// IsCollapsed reports whether the selection is a bare caret.
func (s TextSelection) IsCollapsed() bool {
	return s.Anchor == s.Focus
}

// NumericValue carries the numeric state of range-family widgets.
type NumericValue struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
}

// Node describes one accessible element at snapshot time. Nodes are
// ephemeral values: recomputed wholesale on each publish, never mutated
// in place. Child references are ids only; a node never holds a widget.
type Node struct {
	ID        NodeID
	Role      Role
	Bounds    Rect
	Transform *Transform
	Label     string
	Value     string
	Multiline bool
	Numeric   *NumericValue
	Toggled   *Tristate
	Selection *TextSelection
	Children  []NodeID
	Actions   ActionSet

	// 1-based position metadata for synthesized item nodes.
	PosInSet int
	SetSize  int
}
