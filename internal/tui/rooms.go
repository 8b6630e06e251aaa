package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/firewatch/internal/format"
	"github.com/dm/firewatch/internal/model"
)

const (
	// cardInnerWidth is the content width of a room card; the card adds a
	// 1-column padding and a border on each side.
	cardInnerWidth = 34
	cardOuterWidth = cardInnerWidth + 4

	labelWidth     = 8
	valueWidth     = 10
	sparkWidth     = cardInnerWidth - labelWidth - valueWidth - 1
	waitingText    = "Waiting for first sensor data..."
	failedLoadText = "Failed to load data. Check connection or server."
)

// matchesFilter reports whether a room ID or its display name contains
// filter, ignoring case. An empty filter matches every room.
func matchesFilter(roomID, filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(roomID), f) ||
		strings.Contains(strings.ToLower(format.FormatRoomName(roomID)), f)
}

// renderRooms renders the room grid, or a placeholder when there is
// nothing to show.
func renderRooms(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	if app.board.len() == 0 {
		if !app.session.Loaded() && app.session.LastError() != nil {
			return StyleError.Render(failedLoadText)
		}
		return StyleDim.Render(waitingText)
	}

	filter := app.filterValue()
	cards := app.board.visible(filter)
	if len(cards) == 0 {
		return StyleDim.Render(fmt.Sprintf("No rooms match %q", sanitize(filter)))
	}

	perRow := max(1, width/cardOuterWidth)
	now := app.now()

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rendered := make([]string, 0, end-i)
		for _, c := range cards[i:end] {
			rendered = append(rendered, renderCard(c, now))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one room card.
//
// Layout:
//
//	Server Room
//	● ALERT_FIRE
//	High Temperature (41.2°C)
//	Temp    41.2 °C    ▁▂▃▅▇
//	Smoke   512        ▁▁▂▆█
//	People  3
//	Image   http://…/det.jpg  new
//	Updated 12 sec. ago
func renderCard(c *roomCard, now time.Time) string {
	name := StyleBold.Render(truncate(sanitize(format.FormatRoomName(c.id)), cardInnerWidth))

	if !c.hasView {
		body := strings.Join([]string{
			name,
			StatusStyle(model.RoomUnknown).Render("● " + model.RoomUnknown.String()),
			StyleDim.Render("Waiting for data..."),
		}, "\n")
		return StyleCard.Width(cardInnerWidth + 2).Render(body)
	}

	v := c.view
	r := v.Reading
	lines := []string{
		name,
		StatusStyle(r.Status).Render("● " + r.Status.String()),
	}

	if r.Details != "" {
		lines = append(lines, StyleDim.Render(truncate(sanitize(r.Details), cardInnerWidth)))
	}

	tempStyle := lipgloss.NewStyle()
	if r.TemperatureCurrent != nil {
		tempStyle = severityToStyle(tempSeverity(*r.TemperatureCurrent))
	}
	lines = append(lines, sensorLine("Temp",
		tempStyle.Render(padRight(format.FormatTemperature(r.TemperatureCurrent), valueWidth)),
		RenderSparkline(r.Temperatures, sparkWidth, colorOrange)))

	smokeStyle := lipgloss.NewStyle()
	if r.SmokeCurrent != nil {
		smokeStyle = severityToStyle(smokeSeverity(*r.SmokeCurrent))
	}
	lines = append(lines, sensorLine("Smoke",
		smokeStyle.Render(padRight(format.FormatSmoke(r.SmokeCurrent), valueWidth)),
		RenderSparkline(r.SmokeValues, sparkWidth, colorCyan)))

	if v.PeopleVisible {
		lines = append(lines, padRight("People", labelWidth)+StyleError.Render(fmt.Sprintf("%d", v.PeopleCount)))
	}

	if v.ImageVisible {
		marker := ""
		urlWidth := cardInnerWidth - labelWidth
		if v.ImageReload {
			marker = "  " + StyleYellow.Render("new")
			urlWidth -= 5
		}
		lines = append(lines, padRight("Image", labelWidth)+truncateLeft(sanitize(v.ImageURL), urlWidth)+marker)
	}

	updated := format.NotAvailable
	switch {
	case !r.LastUpdate.IsZero():
		updated = format.FormatRelative(r.LastUpdate, now)
	case r.HasLastUpdate():
		updated = truncate(sanitize(r.LastUpdateRaw), cardInnerWidth-labelWidth)
	}
	lines = append(lines, StyleDim.Render(padRight("Updated", labelWidth)+updated))

	return StyleCard.
		BorderForeground(statusColor(r.Status)).
		Width(cardInnerWidth + 2).
		Render(strings.Join(lines, "\n"))
}

func sensorLine(label, value, spark string) string {
	return padRight(label, labelWidth) + value + " " + spark
}

// padRight pads s with spaces to w visible columns.
func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
