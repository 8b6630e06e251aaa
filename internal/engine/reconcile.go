package engine

import "github.com/dm/firewatch/internal/model"

// KnownRooms is the set of room identifiers seen during a session.
// It only grows: rooms are never removed once seen.
type KnownRooms struct {
	ids   map[string]struct{}
	order []string // first-seen order
}

// NewKnownRooms returns an empty set.
func NewKnownRooms() *KnownRooms {
	return &KnownRooms{ids: make(map[string]struct{})}
}

// Has reports whether id has been seen.
func (k *KnownRooms) Has(id string) bool {
	_, ok := k.ids[id]
	return ok
}

// Len returns the number of known rooms.
func (k *KnownRooms) Len() int {
	return len(k.order)
}

// IDs returns a copy of the known identifiers in first-seen order.
func (k *KnownRooms) IDs() []string {
	out := make([]string, len(k.order))
	copy(out, k.order)
	return out
}

func (k *KnownRooms) add(id string) {
	if _, ok := k.ids[id]; ok {
		return
	}
	k.ids[id] = struct{}{}
	k.order = append(k.order, id)
}

// CommandKind distinguishes room initialisation from room updates.
type CommandKind int

const (
	CommandInit CommandKind = iota
	CommandUpdate
)

func (k CommandKind) String() string {
	if k == CommandInit {
		return "Init"
	}
	return "Update"
}

// Command is one instruction for the render sink. Reading is only set for
// CommandUpdate.
type Command struct {
	Kind    CommandKind
	RoomID  string
	Reading model.RoomReading
}

// Reconcile diffs the rooms in snap against known. For each room, in
// snap.RoomIDs order, it emits Init followed by Update when the room is new
// (and records it in known), or Update alone when it was already known.
// Known rooms absent from snap produce no commands.
func Reconcile(known *KnownRooms, snap *model.Snapshot) []Command {
	ids := snap.RoomIDs()
	cmds := make([]Command, 0, 2*len(ids))
	for _, id := range ids {
		if !known.Has(id) {
			cmds = append(cmds, Command{Kind: CommandInit, RoomID: id})
			known.add(id)
		}
		cmds = append(cmds, Command{Kind: CommandUpdate, RoomID: id, Reading: snap.Rooms[id]})
	}
	return cmds
}
