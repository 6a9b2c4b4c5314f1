package calculator

// KeyKind classifies a keypad button.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyOperator
	KeyDelete
	KeyClear
	KeyEquals
)

// Key labels for the non-digit buttons.
const (
	LabelDelete = "DEL"
	LabelClear  = "C"
	LabelEquals = "="
)

// Key is one keypad button. Label is the text fed to Press; operators use
// the ASCII symbol.
type Key struct {
	Label string
	Kind  KeyKind
}

// Display returns the glyph shown on the button.
func (k Key) Display() string {
	return DisplayText(k.Label)
}

// IsOperator reports whether the key is drawn with the accent color.
func (k Key) IsOperator() bool {
	return k.Kind == KeyOperator || k.Kind == KeyEquals || k.Kind == KeyDelete
}

// Keypad is the button grid, top row first.
var Keypad = [][]Key{
	{{"7", KeyDigit}, {"8", KeyDigit}, {"9", KeyDigit}, {"/", KeyOperator}},
	{{"4", KeyDigit}, {"5", KeyDigit}, {"6", KeyDigit}, {"*", KeyOperator}},
	{{"1", KeyDigit}, {"2", KeyDigit}, {"3", KeyDigit}, {"-", KeyOperator}},
	{{".", KeyDigit}, {"0", KeyDigit}, {LabelDelete, KeyDelete}, {"+", KeyOperator}},
	{{LabelClear, KeyClear}, {LabelEquals, KeyEquals}},
}
