package core

import "github.com/rs/zerolog"

// Dispatcher fans an event out to the members of a room. Delivery is
// fire-and-forget: no acknowledgment, no retry, and a failure to reach one
// member never blocks delivery to the others.
type Dispatcher struct {
	registry *Registry
	rooms    *RoomTable
	log      *zerolog.Logger
}

// NewDispatcher wires a dispatcher to the registry and room table it
// reads from.
func NewDispatcher(registry *Registry, rooms *RoomTable, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, rooms: rooms, log: logger}
}

// BroadcastToRoom delivers (event, payload) to every current member of
// roomID except exclude; pass an empty exclude to deliver to all. A member
// whose connection vanished mid-iteration is skipped silently.
func (d *Dispatcher) BroadcastToRoom(roomID, event string, payload any, exclude string) {
	members := d.rooms.Members(roomID)
	if len(members) == 0 {
		// Unknown and empty rooms are indistinguishable here; the
		// broadcast simply has no recipients.
		d.log.Debug().Str("room", roomID).Str("event", event).Msg("broadcast to empty room")
		return
	}

	for _, id := range members {
		if id == exclude {
			continue
		}
		conn, ok := d.registry.Get(id)
		if !ok {
			continue
		}
		conn.Send(event, payload)
	}
}
