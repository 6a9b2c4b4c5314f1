package ui

import (
	"image/color"
	"log"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/opencalc/internal/ui/keyboard"
	"github.com/OpenTraceLab/opencalc/pkg/calculator"
)

var (
	gradientTopLight    = color.NRGBA{R: 0x0D, G: 0x47, B: 0xA1, A: 255}
	gradientBottomLight = color.NRGBA{R: 0x42, G: 0xA5, B: 0xF5, A: 255}
	gradientTopDark     = color.NRGBA{R: 18, G: 20, B: 26, A: 255}
	gradientBottomDark  = color.NRGBA{R: 34, G: 40, B: 50, A: 255}

	operatorKeyColor = color.NRGBA{R: 0x64, G: 0xB5, B: 0xF6, A: 255}
	digitKeyColor    = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 255}
	resultColor      = color.NRGBA{R: 255, G: 235, B: 59, A: 255}
	historyColor     = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	white            = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black            = color.NRGBA{A: 255}
)

// App drives the Gio-based calculator UI.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *AppState

	ops op.Ops

	keyClicks map[string]*widget.Clickable

	historyList layout.List
	logList     layout.List

	toggleLogsBtn widget.Clickable
	showLogs      bool

	deleteIcon  *widget.Icon
	historyIcon *widget.Icon

	darkMode bool
}

// New wires the Gio window, theme, and shared state together.
func New(window *app.Window, state *AppState) *App {
	if state == nil {
		state = NewState()
	}
	a := &App{
		Window:      window,
		Theme:       theme.NewTheme("", nil, true),
		State:       state,
		keyClicks:   make(map[string]*widget.Clickable),
		historyList: layout.List{Axis: layout.Vertical},
		logList:     layout.List{Axis: layout.Vertical, ScrollToEnd: true},
	}
	for _, row := range calculator.Keypad {
		for _, k := range row {
			a.keyClicks[k.Label] = new(widget.Clickable)
		}
	}
	a.deleteIcon = loadIcon(icons.ContentBackspace, "backspace")
	a.historyIcon = loadIcon(icons.ActionHistory, "history")
	a.applyPalette(state.Snapshot().DarkMode)
	return a
}

func loadIcon(data []byte, name string) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		log.Printf("ui: failed to load %s icon: %v", name, err)
		return nil
	}
	return icon
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) applyPalette(dark bool) {
	a.darkMode = dark
	if dark {
		a.Theme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.Theme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	a.handleKeys(gtx)

	state := a.State.Snapshot()
	if state.DarkMode != a.darkMode {
		a.applyPalette(state.DarkMode)
	}

	a.paintBackground(gtx, state.DarkMode)

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutHeader(gtx)
			}),
			layout.Flexed(0.5, func(gtx layout.Context) layout.Dimensions {
				if a.showLogs {
					return a.layoutLogs(gtx, state)
				}
				return a.layoutHistory(gtx, state)
			}),
			layout.Flexed(0.8, func(gtx layout.Context) layout.Dimensions {
				return a.layoutDisplay(gtx, state)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutKeypad(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutStatus(gtx, state)
			}),
		)
	})
}

func (a *App) paintBackground(gtx layout.Context, dark bool) {
	top, bottom := gradientTopLight, gradientBottomLight
	if dark {
		top, bottom = gradientTopDark, gradientBottomDark
	}
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.LinearGradientOp{
		Stop1:  f32.Pt(0, 0),
		Color1: top,
		Stop2:  f32.Pt(0, float32(size.Y)),
		Color2: bottom,
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (a *App) layoutHeader(gtx layout.Context) layout.Dimensions {
	for a.toggleLogsBtn.Clicked(gtx) {
		a.showLogs = !a.showLogs
		if a.showLogs {
			a.State.SetStatus("Showing log")
		} else {
			a.State.SetStatus("Showing history")
		}
	}

	return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.historyIcon == nil {
					label := "Log"
					if a.showLogs {
						label = "History"
					}
					btn := material.Button(a.Theme.Theme, &a.toggleLogsBtn, label)
					btn.TextSize = unit.Sp(12)
					return btn.Layout(gtx)
				}
				btn := material.IconButton(a.Theme.Theme, &a.toggleLogsBtn, a.historyIcon, "Toggle log")
				btn.Size = unit.Dp(20)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				btn.Color = white
				btn.Background = color.NRGBA{A: 0}
				if a.showLogs {
					btn.Background = operatorKeyColor
				}
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				lbl := material.H6(a.Theme.Theme, "OpenCalc")
				lbl.Color = white
				lbl.Font.Weight = font.Bold
				lbl.Alignment = text.Middle
				return lbl.Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutHistory(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	if len(state.Recent) == 0 {
		lbl := material.Caption(a.Theme.Theme, "History will appear here.")
		lbl.Color = historyColor
		lbl.Alignment = text.End
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return lbl.Layout(gtx)
	}
	return a.historyList.Layout(gtx, len(state.Recent), func(gtx layout.Context, idx int) layout.Dimensions {
		if idx >= len(state.Recent) {
			return layout.Dimensions{}
		}
		lbl := material.Body1(a.Theme.Theme, state.Recent[idx].String())
		lbl.Color = historyColor
		lbl.Alignment = text.End
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return lbl.Layout(gtx)
	})
}

func (a *App) layoutLogs(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	if len(state.Logs) == 0 {
		lbl := material.Caption(a.Theme.Theme, "Logs will appear here.")
		lbl.Color = historyColor
		return lbl.Layout(gtx)
	}
	return a.logList.Layout(gtx, len(state.Logs), func(gtx layout.Context, idx int) layout.Dimensions {
		if idx >= len(state.Logs) {
			return layout.Dimensions{}
		}
		lbl := material.Caption(a.Theme.Theme, state.Logs[idx])
		lbl.Color = historyColor
		return lbl.Layout(gtx)
	})
}

func (a *App) layoutDisplay(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	gtx.Constraints.Min = gtx.Constraints.Max
	return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.H3(a.Theme.Theme, state.Expression)
			lbl.Color = white
			lbl.Font.Weight = font.Bold
			lbl.Alignment = text.End
			lbl.MaxLines = 2
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return lbl.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.H5(a.Theme.Theme, state.Result)
			lbl.Color = resultColor
			lbl.Alignment = text.End
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return lbl.Layout(gtx)
		}),
	)
}

func (a *App) layoutKeypad(gtx layout.Context) layout.Dimensions {
	rows := make([]layout.FlexChild, 0, len(calculator.Keypad))
	for _, row := range calculator.Keypad {
		keys := row
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.layoutKeyRow(gtx, keys)
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (a *App) layoutKeyRow(gtx layout.Context, keys []calculator.Key) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(keys))
	for _, k := range keys {
		btnKey := k
		children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.layoutKey(gtx, btnKey)
			})
		}))
	}
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEvenly}.Layout(gtx, children...)
}

func (a *App) layoutKey(gtx layout.Context, k calculator.Key) layout.Dimensions {
	clk := a.keyClicks[k.Label]
	for clk.Clicked(gtx) {
		a.press(k.Label)
	}

	bg, fg := digitKeyColor, black
	if k.IsOperator() {
		bg, fg = operatorKeyColor, white
	}
	height := gtx.Dp(unit.Dp(64))
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	if k.Kind == calculator.KeyDelete && a.deleteIcon != nil {
		btn := material.IconButton(a.Theme.Theme, clk, a.deleteIcon, "Delete")
		btn.Background = bg
		btn.Color = fg
		btn.Size = unit.Dp(28)
		return btn.Layout(gtx)
	}

	btn := material.Button(a.Theme.Theme, clk, k.Display())
	btn.Background = bg
	btn.Color = fg
	btn.TextSize = unit.Sp(24)
	btn.Font.Weight = font.Bold
	btn.CornerRadius = unit.Dp(32)
	return btn.Layout(gtx)
}

func (a *App) layoutStatus(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(a.Theme.Theme, "v"+state.AppVersion)
				lbl.Color = historyColor
				return lbl.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(a.Theme.Theme, state.Status)
				lbl.Color = historyColor
				return lbl.Layout(gtx)
			}),
		)
	})
}

// handleKeys maps hardware keyboard presses onto keypad labels.
func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(keyboard.Filter)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		if label := keyboard.Label(ke); label != "" {
			a.press(label)
		}
	}
}

func (a *App) press(label string) {
	a.State.Press(label)
	a.invalidate()
}

// invalidate requests a new frame.
func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}
