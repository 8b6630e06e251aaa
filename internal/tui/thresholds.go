package tui

import "github.com/charmbracelet/lipgloss"

// Alert thresholds used by the sensor server. Values strictly above them
// raise a room alert.
const (
	temperatureThreshold = 35.0
	smokeThreshold       = 400.0

	// warnRatio marks the fraction of a threshold from which a value is
	// shown as approaching it.
	warnRatio = 0.8
)

// severity represents the alert level for a sensor value.
type severity int

const (
	severityNormal   severity = iota
	severityWarning           // yellow
	severityCritical          // red
)

// thresholdSeverity returns Critical above limit and Warning above
// warnRatio*limit.
func thresholdSeverity(v, limit float64) severity {
	switch {
	case v > limit:
		return severityCritical
	case v > limit*warnRatio:
		return severityWarning
	default:
		return severityNormal
	}
}

// tempSeverity returns Warning above 28 °C and Critical above 35 °C.
func tempSeverity(c float64) severity {
	return thresholdSeverity(c, temperatureThreshold)
}

// smokeSeverity returns Warning above 320 and Critical above 400.
func smokeSeverity(v float64) severity {
	return thresholdSeverity(v, smokeThreshold)
}

// severityToStyle maps a severity level to the appropriate lipgloss style.
func severityToStyle(s severity) lipgloss.Style {
	switch s {
	case severityWarning:
		return StyleYellow
	case severityCritical:
		return StyleRed
	default:
		return lipgloss.NewStyle()
	}
}
