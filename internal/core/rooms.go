package core

import "sync"

// RoomTable maps room ids to member connection-id sets. Rooms are created
// implicitly on first join and pruned when their last member leaves; the
// pruning is not observable to clients. A reverse index (connection id ->
// rooms) makes disconnect cleanup cheap.
//
// Room ids are opaque caller-supplied strings; the table never validates
// them against any notion of room existence.
type RoomTable struct {
	mu     sync.RWMutex
	rooms  map[string]map[string]struct{}
	joined map[string]map[string]struct{}
}

// NewRoomTable constructs an empty room table.
func NewRoomTable() *RoomTable {
	return &RoomTable{
		rooms:  make(map[string]map[string]struct{}),
		joined: make(map[string]map[string]struct{}),
	}
}

// Join adds connID to the room's member set. Joining a room already joined
// is a no-op, so a member is never delivered to twice.
func (t *RoomTable) Join(roomID, connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	members, ok := t.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		t.rooms[roomID] = members
	}
	members[connID] = struct{}{}

	rooms, ok := t.joined[connID]
	if !ok {
		rooms = make(map[string]struct{})
		t.joined[connID] = rooms
	}
	rooms[roomID] = struct{}{}
}

// Leave removes connID from the room's member set. Leaving a room not
// joined is a no-op, not an error.
func (t *RoomTable) Leave(roomID, connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveLocked(roomID, connID)
}

// LeaveAll removes connID from every room it is a member of. Used on
// disconnect so a dead connection can never appear in a member set.
func (t *RoomTable) LeaveAll(connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for roomID := range t.joined[connID] {
		t.leaveLocked(roomID, connID)
	}
}

func (t *RoomTable) leaveLocked(roomID, connID string) {
	if members, ok := t.rooms[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(t.rooms, roomID)
		}
	}
	if rooms, ok := t.joined[connID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(t.joined, connID)
		}
	}
}

// Members returns a snapshot of the room's member ids, possibly empty.
func (t *RoomTable) Members(roomID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	members := t.rooms[roomID]
	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}
