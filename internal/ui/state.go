package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/OpenTraceLab/opencalc/pkg/calculator"
	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Expression string
	Result     string
	Recent     []calculator.Entry

	Status     string
	DarkMode   bool
	AppVersion string

	Logs []string

	LastUpdated time.Time
}

// AppState tracks the calculator session shared between the Gio event loop
// and anything else that feeds it input.
type AppState struct {
	mu sync.RWMutex

	calc      calculator.State
	evaluator *eval.Evaluator

	status     string
	darkMode   bool
	appVersion string

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		calc:        calculator.NewState(calculator.DefaultHistoryDepth),
		evaluator:   eval.New(eval.Options{}),
		logLimit:    200,
		status:      "Ready",
		appVersion:  "dev",
		lastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Expression:  s.calc.DisplayExpression(),
		Result:      s.calc.Result,
		Recent:      s.calc.Recent(),
		Status:      s.status,
		DarkMode:    s.darkMode,
		AppVersion:  s.appVersion,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
}

// Configure replaces the evaluator and history depth. The current
// expression and history are kept.
func (s *AppState) Configure(opts eval.Options, historyDepth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evaluator = eval.New(opts)
	s.calc.HistoryDepth = historyDepth
	applied := s.evaluator.Options()
	s.appendLogLocked(fmt.Sprintf("Evaluator: strict=%t allow-inf=%t history=%d",
		applied.StrictNumbers, applied.AllowNonFinite, historyDepth))
}

// Press feeds one keypad label into the calculator session.
func (s *AppState) Press(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.calc.History)
	s.calc = s.calc.Press(label, s.evaluator)
	s.lastUpdated = time.Now()

	if label != calculator.LabelEquals || len(s.calc.History) == 0 {
		return
	}
	entry := s.calc.History[len(s.calc.History)-1]
	if entry.Failed {
		s.status = "Evaluation failed"
	} else {
		s.status = "Evaluated"
	}
	s.appendLogLocked(entry.String())
	if before == len(s.calc.History) {
		s.appendLogLocked(fmt.Sprintf("History trimmed to %d entries", len(s.calc.History)))
	}
}

// SetStatus updates the user-facing status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLogLocked(msg)
}

func (s *AppState) appendLogLocked(msg string) {
	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}

// SetDarkMode selects the dark or light palette.
func (s *AppState) SetDarkMode(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.darkMode == dark {
		return
	}
	s.darkMode = dark
	s.lastUpdated = time.Now()
}

// SetAppVersion records the running UI/application version string.
func (s *AppState) SetAppVersion(version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version == "" {
		version = "dev"
	}
	s.appVersion = version
	s.lastUpdated = time.Now()
}
