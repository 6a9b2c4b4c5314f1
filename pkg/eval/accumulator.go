package eval

// accumulator holds the signed operands of one evaluation. The zero value is
// the empty accumulator; fold on it fails instead of touching a missing
// element.
type accumulator struct {
	operands []float64
}

func (a *accumulator) empty() bool { return len(a.operands) == 0 }

func (a *accumulator) push(v float64) {
	a.operands = append(a.operands, v)
}

// fold replaces the most recent operand with f(last). It reports false when
// there is no operand.
func (a *accumulator) fold(f func(last float64) float64) bool {
	if a.empty() {
		return false
	}
	i := len(a.operands) - 1
	a.operands[i] = f(a.operands[i])
	return true
}

func (a *accumulator) sum() float64 {
	var total float64
	for _, v := range a.operands {
		total += v
	}
	return total
}
