// Package keyboard maps hardware key presses onto calculator keypad labels.
package keyboard

import (
	"gioui.org/io/key"

	"github.com/OpenTraceLab/opencalc/pkg/calculator"
)

// Filter matches every key press. Shift is optional so that shifted
// symbols such as * (Shift+8) and + (Shift+=) are delivered.
var Filter = key.Filter{Optional: key.ModShift}

// Label returns the keypad label for ke, or "" if the key has no keypad
// equivalent.
func Label(ke key.Event) string {
	shift := ke.Modifiers.Contain(key.ModShift)
	switch ke.Name {
	case key.NameReturn, key.NameEnter:
		return calculator.LabelEquals
	case key.NameDeleteBackward, key.NameDeleteForward:
		return calculator.LabelDelete
	case key.NameEscape:
		return calculator.LabelClear
	case "=":
		if shift {
			return "+"
		}
		return calculator.LabelEquals
	case "8":
		if shift {
			return "*"
		}
		return "8"
	case "0", "1", "2", "3", "4", "5", "6", "7", "9", ".", "+", "-", "*", "/":
		return string(ke.Name)
	case "C":
		return calculator.LabelClear
	}
	return ""
}
