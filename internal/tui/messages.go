package tui

import (
	"time"

	"github.com/dm/firewatch/internal/model"
)

// SnapshotMsg delivers a successful poll result to the TUI.
type SnapshotMsg struct {
	Snapshot *model.Snapshot
}

// FetchErrorMsg signals a poll failure.
type FetchErrorMsg struct{ Err error }

// TickMsg triggers the next scheduled poll.
type TickMsg time.Time
