package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NotAvailable is shown for readings the server did not send.
const NotAvailable = "N/A"

// FormatTemperature formats a temperature in °C with one decimal place.
// Example: 24.04 → "24.0 °C", nil → "N/A".
func FormatTemperature(c *float64) string {
	if c == nil || math.IsNaN(*c) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f °C", *c)
}

// FormatSmoke formats a raw smoke sensor value. Whole numbers are shown
// without decimals and with comma separators; others with one decimal place.
// Example: 1024 → "1,024", 12.34 → "12.3", nil → "N/A".
func FormatSmoke(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return NotAvailable
	}
	if *v == math.Trunc(*v) && math.Abs(*v) < 1e15 {
		return FormatNumber(int64(*v))
	}
	return formatCommaFloat(*v)
}

// FormatRelative formats t relative to now in a short style.
// Examples: "just now", "12 sec. ago", "3 min. ago", "2 hr. ago",
// "4 days ago", "in 5 sec.". A zero t returns "N/A".
func FormatRelative(t, now time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var s string
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		s = fmt.Sprintf("%d sec.", int(d.Seconds()))
	case d < time.Hour:
		s = fmt.Sprintf("%d min.", int(d.Minutes()))
	case d < 24*time.Hour:
		s = fmt.Sprintf("%d hr.", int(d.Hours()))
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			s = "1 day"
		} else {
			s = fmt.Sprintf("%d days", days)
		}
	}
	if future {
		return "in " + s
	}
	return s + " ago"
}

// FormatClock formats t as local wall-clock time, e.g. "09:15:02".
// A zero t returns "N/A".
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Local().Format("15:04:05")
}

// FormatRoomName turns a room identifier into a display name by replacing
// underscores with spaces. Example: "LAB_2" → "LAB 2".
func FormatRoomName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// formatCommaFloat formats a float with comma-separated thousands and one decimal place.
func formatCommaFloat(f float64) string {
	formatted := fmt.Sprintf("%.1f", f)
	sign := ""
	if len(formatted) > 0 && formatted[0] == '-' {
		sign = "-"
		formatted = formatted[1:]
	}
	parts := strings.SplitN(formatted, ".", 2)
	intPart := insertCommas(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "." + parts[1]
	}
	return sign + intPart
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
