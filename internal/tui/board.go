package tui

import (
	"github.com/dm/firewatch/internal/engine"
	"github.com/dm/firewatch/internal/model"
)

// roomCard is the render state of one card on the board.
type roomCard struct {
	id      string
	view    engine.RoomView
	hasView bool // false until the first UpdateRoom
}

// board is the TUI's engine.Sink. It keeps one card per room in first-seen
// order and the latest overall status.
type board struct {
	order   []string
	cards   map[string]*roomCard
	overall model.SystemStatus
	errors  int
}

func newBoard() *board {
	return &board{cards: make(map[string]*roomCard)}
}

func (b *board) InitRoom(roomID string) {
	if _, ok := b.cards[roomID]; ok {
		return
	}
	b.order = append(b.order, roomID)
	b.cards[roomID] = &roomCard{id: roomID}
}

func (b *board) UpdateRoom(v engine.RoomView) {
	c, ok := b.cards[v.RoomID]
	if !ok {
		b.InitRoom(v.RoomID)
		c = b.cards[v.RoomID]
	}
	c.view = v
	c.hasView = true
}

func (b *board) SetOverallStatus(status model.SystemStatus) {
	b.overall = status
}

func (b *board) ReportFetchError(error) {
	b.errors++
}

// visible returns the cards matching filter, in first-seen order.
func (b *board) visible(filter string) []*roomCard {
	out := make([]*roomCard, 0, len(b.order))
	for _, id := range b.order {
		if matchesFilter(id, filter) {
			out = append(out, b.cards[id])
		}
	}
	return out
}

func (b *board) len() int { return len(b.order) }
