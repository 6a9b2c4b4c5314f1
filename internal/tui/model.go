// Package tui is a terminal frontend for the calculator session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/opencalc/pkg/calculator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1).
			Align(lipgloss.Right)

	expressionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	historyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Align(lipgloss.Right)

	digitKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("255")).
			Width(5).
			Align(lipgloss.Center).
			Margin(0, 1, 0, 0)

	operatorKeyStyle = digitKeyStyle.
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("75"))
)

const displayWidth = 26

// Model is the Bubble Tea model wrapping a calculator session.
type Model struct {
	calc      calculator.State
	evaluator calculator.Evaluator

	keys keyMap
	help help.Model

	width  int
	height int
}

// New returns a model with an empty session.
func New(ev calculator.Evaluator, historyDepth int) Model {
	return Model{
		calc:      calculator.NewState(historyDepth),
		evaluator: ev,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// State returns the current calculator session.
func (m Model) State() calculator.State {
	return m.calc
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Equals):
			m.calc = m.calc.OnEquals(m.evaluator)
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			m.calc = m.calc.OnDelete()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.calc = m.calc.OnClear()
			return m, nil
		}

		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				switch r {
				case 'x', 'X':
					r = '×'
				case 'c', 'C':
					m.calc = m.calc.OnClear()
					continue
				}
				m.calc = m.calc.Press(string(r), m.evaluator)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("OpenCalc"))
	sb.WriteString("\n\n")

	recent := m.calc.Recent()
	for _, e := range recent {
		sb.WriteString(historyStyle.Width(displayWidth).Render(e.String()))
		sb.WriteString("\n")
	}
	if len(recent) > 0 {
		sb.WriteString("\n")
	}

	result := resultStyle.Render(m.calc.Result)
	if len(m.calc.History) > 0 && m.calc.History[len(m.calc.History)-1].Failed && m.calc.Result != "" {
		result = errorStyle.Render(m.calc.Result)
	}
	display := lipgloss.JoinVertical(lipgloss.Right,
		expressionStyle.Render(m.calc.DisplayExpression()),
		result,
	)
	sb.WriteString(displayStyle.Width(displayWidth).Render(display))
	sb.WriteString("\n\n")

	sb.WriteString(renderKeypad())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func renderKeypad() string {
	rows := make([]string, 0, len(calculator.Keypad))
	for _, row := range calculator.Keypad {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			style := digitKeyStyle
			if k.IsOperator() {
				style = operatorKeyStyle
			}
			cells = append(cells, style.Render(k.Display()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run starts the terminal UI and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
