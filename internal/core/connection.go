package core

// Transport delivers named events to a single connected peer.
// Implementations must not block: delivery is fire-and-forget, and a slow
// or vanished peer is dropped rather than waited for.
type Transport interface {
	Send(event string, payload any)
}

// Connection is one active client session as seen by the core layer.
// It owns nothing but its identity and the outbound transport; room
// membership lives in the RoomTable.
type Connection struct {
	ID string

	transport Transport
}

// NewConnection binds an identifier to an outbound transport.
func NewConnection(id string, t Transport) *Connection {
	return &Connection{ID: id, transport: t}
}

// Send forwards an event to the peer.
func (c *Connection) Send(event string, payload any) {
	c.transport.Send(event, payload)
}
