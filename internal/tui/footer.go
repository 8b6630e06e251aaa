package tui

import "fmt"

// renderFooter renders the key binding help footer at full terminal width.
// When app.showHelp is true, shows all key bindings; otherwise a brief hint
// with the room count.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := "? for help"
	switch n := app.board.len(); {
	case app.showHelp:
		text = helpText
	case n == 0:
	case app.filterValue() != "":
		text += fmt.Sprintf("  %d/%d rooms", len(app.board.visible(app.filterValue())), n)
	case n == 1:
		text += "  1 room"
	default:
		text += fmt.Sprintf("  %d rooms", n)
	}
	return StyleDim.Width(width).Render(text)
}
