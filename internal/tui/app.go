package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/firewatch/internal/engine"
)

// App is the root Bubble Tea model for firewatch.
type App struct {
	fetcher  *engine.Fetcher
	interval time.Duration
	timeout  time.Duration

	// Render state. session is only touched from Update.
	session *engine.Session
	board   *board
	sink    engine.Sink

	// Poll state
	fetching    bool // a fetchCmd goroutine is in flight
	tickPending bool // a tickCmd is scheduled

	// Layout
	width, height int
	viewport      viewport.Model

	// UI state
	filter    textinput.Model
	filtering bool
	showHelp  bool

	now func() time.Time
}

// NewApp creates an App polling f every interval. Extra sinks receive the
// same render commands as the board, e.g. a log sink.
func NewApp(f *engine.Fetcher, interval time.Duration, extra ...engine.Sink) *App {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter rooms..."
	ti.CharLimit = 80

	b := newBoard()
	return &App{
		fetcher:  f,
		interval: interval,
		timeout:  engine.FetchTimeout(interval),
		session:  engine.NewSession(),
		board:    b,
		sink:     engine.Tee(append([]engine.Sink{b}, extra...)...),
		viewport: viewport.New(0, 0),
		filter:   ti,
		fetching: true, // Init() always issues an immediate fetchCmd
		now:      time.Now,
	}
}

// WithTimeout overrides the per-fetch timeout. Non-positive values keep the
// interval-derived default.
func (app *App) WithTimeout(d time.Duration) *App {
	if d > 0 {
		app.timeout = d
	}
	return app
}

// Init implements tea.Model. Starts the first fetch immediately on launch.
func (app *App) Init() tea.Cmd {
	return fetchCmd(app.fetcher, app.timeout)
}

// Update implements tea.Model and is the only place the session changes.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.resize()

	case SnapshotMsg:
		app.fetching = false
		app.session.Apply(msg.Snapshot, app.sink)
		app.refresh()
		return app, app.scheduleTick()

	case FetchErrorMsg:
		app.fetching = false
		app.session.Fail(msg.Err, app.sink)
		app.refresh()
		return app, app.scheduleTick()

	case TickMsg:
		app.tickPending = false
		if app.fetching {
			// The in-flight fetch reschedules when it lands.
			return app, nil
		}
		app.fetching = true
		return app, fetchCmd(app.fetcher, app.timeout)

	case tea.KeyMsg:
		if app.filtering {
			return app, app.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.fetching {
				return app, nil
			}
			app.fetching = true
			return app, fetchCmd(app.fetcher, app.timeout)
		case key.Matches(msg, keys.Filter):
			app.filtering = true
			app.resize()
			return app, app.filter.Focus()
		case key.Matches(msg, keys.Escape):
			app.clearFilter()
			return app, nil
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil
		}
		var cmd tea.Cmd
		app.viewport, cmd = app.viewport.Update(msg)
		return app, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		app.viewport, cmd = app.viewport.Update(msg)
		return app, cmd
	}

	return app, nil
}

// updateFilter handles a key press while the filter input has focus. The
// filter applies as the user types.
func (app *App) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, keys.Escape):
		app.clearFilter()
		return nil
	case key.Matches(msg, keys.Accept):
		app.filtering = false
		app.filter.Blur()
		app.resize()
		return nil
	}
	var cmd tea.Cmd
	app.filter, cmd = app.filter.Update(msg)
	app.viewport.GotoTop()
	app.refresh()
	return cmd
}

func (app *App) clearFilter() {
	app.filtering = false
	app.filter.Blur()
	app.filter.SetValue("")
	app.resize()
}

// filterValue returns the active room filter.
func (app *App) filterValue() string {
	return strings.TrimSpace(app.filter.Value())
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	parts := []string{renderHeader(app)}
	if b := renderFireBanner(app); b != "" {
		parts = append(parts, b)
	}
	if f := app.renderFilterLine(); f != "" {
		parts = append(parts, f)
	}
	if app.height > 0 {
		parts = append(parts, app.viewport.View())
	} else {
		parts = append(parts, renderRooms(app))
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

func (app *App) renderFilterLine() string {
	switch {
	case app.filtering:
		return app.filter.View()
	case app.filterValue() != "":
		return StyleDim.Render("filter: " + sanitize(app.filterValue()) + "  (esc to clear)")
	default:
		return ""
	}
}

// resize fits the viewport to the terminal and re-renders its content.
func (app *App) resize() {
	app.viewport.Width = app.width
	app.refresh()
}

// refresh re-renders the room grid into the viewport. The viewport takes
// the height left between the header, optional banner and filter lines,
// and the footer; the banner comes and goes with snapshots.
func (app *App) refresh() {
	if app.height > 0 {
		chrome := 2
		if app.session.FireAlert() {
			chrome++
		}
		if app.filtering || app.filterValue() != "" {
			chrome++
		}
		app.viewport.Height = max(0, app.height-chrome)
	}
	app.viewport.SetContent(renderRooms(app))
}

// scheduleTick starts the next poll timer unless one is already pending, so
// manual refreshes never multiply the tick chain.
func (app *App) scheduleTick() tea.Cmd {
	if app.tickPending {
		return nil
	}
	app.tickPending = true
	return tickCmd(app.interval)
}

// tickCmd schedules the next poll after duration d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchCmd performs one fetch with its own timeout and returns a
// SnapshotMsg or FetchErrorMsg.
func fetchCmd(f *engine.Fetcher, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := f.Fetch(ctx)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		return SnapshotMsg{Snapshot: snap}
	}
}
