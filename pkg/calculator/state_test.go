package calculator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

func press(s State, ev Evaluator, labels ...string) State {
	for _, l := range labels {
		s = s.Press(l, ev)
	}
	return s
}

func TestPressEvaluates(t *testing.T) {
	ev := eval.New(eval.Options{})
	s := press(NewState(0), ev, "5", "+", "3", "*", "2", "=")

	assert.Equal(t, "5+3*2", s.Expression)
	assert.Equal(t, "= 11", s.Result)
	require.Len(t, s.History, 1)
	assert.Equal(t, "5+3×2 = 11", s.History[0].String())
	assert.False(t, s.History[0].Failed)
}

func TestEqualsFailureKeepsExpression(t *testing.T) {
	ev := eval.New(eval.Options{})
	s := press(NewState(0), ev, "*", "5", "=")

	assert.Equal(t, "*5", s.Expression)
	assert.Equal(t, eval.ErrorText, s.Result)
	require.Len(t, s.History, 1)
	assert.True(t, s.History[0].Failed)
	assert.Equal(t, "×5 = Error", s.History[0].String())
}

func TestDeleteAndClear(t *testing.T) {
	ev := eval.New(eval.Options{})
	s := press(NewState(0), ev, "1", "2", "×", "DEL", "DEL")
	assert.Equal(t, "1", s.Expression)

	s = s.OnDelete().OnDelete()
	assert.Equal(t, "", s.Expression)

	s = press(s, ev, "9", "=", "C")
	assert.Equal(t, "", s.Expression)
	assert.Equal(t, "", s.Result)
	assert.Len(t, s.History, 1, "clear keeps history")
}

func TestDeleteRemovesWholeRune(t *testing.T) {
	s := State{Expression: "2×"}
	assert.Equal(t, "2", s.OnDelete().Expression)
}

func TestOperatorGlyphsNormalized(t *testing.T) {
	s := NewState(0).OnDigit('8').OnOperator('÷').OnDigit('2').OnOperator('×').OnDigit('3')
	assert.Equal(t, "8/2*3", s.Expression)
	assert.Equal(t, "8÷2×3", s.DisplayExpression())
}

func TestIgnoredInput(t *testing.T) {
	s := NewState(0).OnDigit('x').OnOperator('^')
	assert.Equal(t, "", s.Expression)

	s = press(s, nil, "sin", "", "%")
	assert.Equal(t, "", s.Expression)
}

func TestHandlersDoNotMutateReceiver(t *testing.T) {
	ev := eval.New(eval.Options{})
	base := press(NewState(2), ev, "1", "=", "2", "=")
	require.Len(t, base.History, 2)
	snapshot := append([]Entry(nil), base.History...)

	next := press(base, ev, "3", "=")
	_ = press(base, ev, "4", "=")

	assert.Equal(t, snapshot, base.History)
	assert.Equal(t, "12", base.Expression)
	assert.Equal(t, "123", next.History[1].Expression)
}

func TestHistoryCappedMostRecentFirst(t *testing.T) {
	ev := eval.New(eval.Options{})
	s := NewState(0)
	for i := 0; i < 15; i++ {
		s = s.OnClear()
		for _, r := range fmt.Sprint(i) {
			s = s.OnDigit(r)
		}
		s = s.OnEquals(ev)
	}

	require.Len(t, s.History, DefaultHistoryDepth)
	recent := s.Recent()
	assert.Equal(t, "14", recent[0].Expression)
	assert.Equal(t, "5", recent[len(recent)-1].Expression)
}

func TestCustomHistoryDepth(t *testing.T) {
	ev := eval.New(eval.Options{})
	s := press(NewState(3), ev, "1", "=", "C", "2", "=", "C", "3", "=", "C", "4", "=")
	require.Len(t, s.History, 3)
	assert.Equal(t, "2", s.History[0].Expression)
}

type stubEvaluator struct {
	calls []string
	value float64
	err   error
}

func (s *stubEvaluator) Evaluate(raw string) (float64, error) {
	s.calls = append(s.calls, raw)
	return s.value, s.err
}

func TestEqualsUsesEvaluator(t *testing.T) {
	stub := &stubEvaluator{value: 0.5}
	s := State{Expression: "1÷2"}.OnEquals(stub)

	assert.Equal(t, []string{"1÷2"}, stub.calls)
	assert.Equal(t, "= 0.5", s.Result)

	stub.err = eval.ErrNonFinite
	s = s.OnEquals(stub)
	assert.Equal(t, eval.ErrorText, s.Result)
}

func TestKeypadLayout(t *testing.T) {
	require.Len(t, Keypad, 5)
	seen := map[string]bool{}
	for _, row := range Keypad {
		for _, k := range row {
			seen[k.Label] = true
		}
	}
	for _, want := range []string{"0", "9", ".", "+", "-", "*", "/", "DEL", "C", "="} {
		assert.True(t, seen[want], "keypad missing %q", want)
	}
	assert.Equal(t, "×", Key{Label: "*", Kind: KeyOperator}.Display())
	assert.True(t, Key{Label: "DEL", Kind: KeyDelete}.IsOperator())
	assert.False(t, Key{Label: "C", Kind: KeyClear}.IsOperator())
}
