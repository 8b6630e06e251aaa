package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/firewatch/internal/model"
)

// Color constants for the fire dashboard palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorOrange = lipgloss.Color("#f97316")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
)

// Status styles, bold foreground, used for room badges.
var (
	StyleStatusNormal  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusFire    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleStatusWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleStatusUnknown = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleFireBanner spans the width under the header while a fire alert is active.
var StyleFireBanner = lipgloss.NewStyle().
	Background(colorRed).
	Foreground(colorWhite).
	Bold(true).
	Align(lipgloss.Center)

// StyleCard is the bordered room card. The border color follows the room status.
var StyleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Overall status chips.
var (
	chipBase = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(colorDark)

	StyleChipNormal  = chipBase.Background(colorGreen)
	StyleChipFire    = chipBase.Background(colorRed).Foreground(colorWhite)
	StyleChipWarning = chipBase.Background(colorYellow)
	StyleChipUnknown = chipBase.Background(colorGray)
)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
	StyleBold  = lipgloss.NewStyle().Bold(true)
)

// Named color styles for value coloring.
var (
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(colorOrange)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)

// StatusStyle returns the badge style for a room status.
func StatusStyle(s model.RoomStatus) lipgloss.Style {
	switch s {
	case model.RoomNormal:
		return StyleStatusNormal
	case model.RoomAlertFire:
		return StyleStatusFire
	case model.RoomAlertMissing, model.RoomStale:
		return StyleStatusWarning
	default:
		return StyleStatusUnknown
	}
}

// statusColor returns the card border color for a room status.
func statusColor(s model.RoomStatus) lipgloss.Color {
	switch s {
	case model.RoomNormal:
		return colorGreen
	case model.RoomAlertFire:
		return colorRed
	case model.RoomAlertMissing, model.RoomStale:
		return colorYellow
	default:
		return colorGray
	}
}
