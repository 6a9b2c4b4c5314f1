package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run opens the calculator window and hands the main thread to Gio. The
// process exits when the window is closed, with status 1 if the window
// reported an error.
func Run(state *AppState) error {
	if state == nil {
		state = NewState()
	}
	title := "OpenCalc " + state.Snapshot().AppVersion

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(title),
			app.Size(unit.Dp(400), unit.Dp(720)),
			app.MinSize(unit.Dp(320), unit.Dp(560)),
		)
		code := 0
		if err := New(w, state).Run(); err != nil {
			log.Printf("ui: window closed: %v", err)
			code = 1
		}
		os.Exit(code)
	}()

	app.Main()
	return nil
}
