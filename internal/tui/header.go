package tui

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/format"
	"github.com/dm/firewatch/internal/model"
)

// maxErrorWidth caps an unclassified error shown in the header.
const maxErrorWidth = 40

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   "Firewatch  <server URL>"
//	center: overall status chip, followed by the error while a fetch is failing
//	right:  "Last: HH:MM:SS  Poll: 2s" (or "Press r to retry" while failing)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	baseURL := ""
	if app.fetcher != nil {
		baseURL = app.fetcher.BaseURL()
	}
	leftText := "Firewatch  " + sanitize(baseURL)

	lastErr := app.session.LastError()
	center := overallChip(app.board.overall, lastErr != nil)

	var right string
	if lastErr != nil {
		center += "  " + StyleError.Render(classifyError(lastErr))
		right = StyleError.Render("Press r to retry")
	} else {
		lastStr := "--:--:--"
		if updated := app.session.LastUpdated(); !updated.IsZero() {
			lastStr = format.FormatClock(updated)
		}
		right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, formatDuration(app.interval)))
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	// On narrow terminals the right side goes first, then the URL is cut.
	innerWidth := width - 2
	if lipgloss.Width(leftText)+lipgloss.Width(center)+lipgloss.Width(right) > innerWidth {
		right = ""
	}
	left := truncate(leftText, max(0, innerWidth-lipgloss.Width(center)-lipgloss.Width(right)))

	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).MaxHeight(1).Render(row)
}

// overallChip renders the overall status as a colored chip. failing marks
// an ALERT_MISSING caused by the latest fetch rather than by a room.
func overallChip(status model.SystemStatus, failing bool) string {
	switch {
	case status == model.SystemAlertFire:
		return StyleChipFire.Render("FIRE DETECTED!")
	case failing:
		return StyleChipFire.Render("System error")
	case status == model.SystemAlertMissing:
		return StyleChipWarning.Render("System warning")
	case status == model.SystemNormal:
		return StyleChipNormal.Render("All normal")
	default:
		return StyleChipUnknown.Render("No data yet")
	}
}

// renderFireBanner renders the full-width alert line shown while the latest
// snapshot carries the fire-alert flag.
func renderFireBanner(app *App) string {
	if !app.session.FireAlert() {
		return ""
	}
	width := app.width
	if width <= 0 {
		width = 80
	}
	return StyleFireBanner.Width(width).Render("FIRE ALERT TRIGGERED")
}

// classifyError turns a fetch error into a short human-readable reason.
func classifyError(err error) string {
	if kind, ok := client.KindOf(err); ok {
		switch kind {
		case client.KindHTTPStatus:
			var fe *client.FetchError
			if errors.As(err, &fe) && fe.StatusCode != 0 {
				return fmt.Sprintf("Server returned %d", fe.StatusCode)
			}
		case client.KindParse:
			return "Malformed response"
		}
	}

	var (
		certErr      *tls.CertificateVerificationError
		unknownAuth  x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		recordHdrErr tls.RecordHeaderError
	)
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return "Connection refused"
	case client.IsTimeout(err):
		return "Timeout"
	case errors.As(err, &certErr), errors.As(err, &unknownAuth),
		errors.As(err, &hostnameErr), errors.As(err, &recordHdrErr):
		return "TLS error"
	}
	return truncate(sanitize(err.Error()), maxErrorWidth)
}

// formatDuration formats a poll interval compactly, e.g. "2s", "1.5s" or "2m".
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d%time.Second == 0:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	default:
		return d.String()
	}
}
