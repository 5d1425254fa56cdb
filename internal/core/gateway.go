package core

import (
	"github.com/rs/zerolog"

	"github.com/noskills/chat-gateway/internal/proto"
	"github.com/noskills/chat-gateway/internal/utils"
)

// Gateway translates the chat protocol into registry, room table and
// dispatcher calls. It is stateless per event: all connection state lives
// in the registry and the room table. Constructed once at server start,
// shared by the websocket and HTTP paths.
type Gateway struct {
	registry   *Registry
	rooms      *RoomTable
	dispatcher *Dispatcher
	log        *zerolog.Logger
}

// NewGateway constructs a gateway with fresh registry and room state.
func NewGateway(logger *zerolog.Logger) *Gateway {
	registry := NewRegistry()
	rooms := NewRoomTable()
	return &Gateway{
		registry:   registry,
		rooms:      rooms,
		dispatcher: NewDispatcher(registry, rooms, logger),
		log:        logger,
	}
}

// Connect registers a new connection speaking over the given transport.
func (g *Gateway) Connect(t Transport) *Connection {
	conn := NewConnection(utils.NewConnectionID(), t)
	g.registry.Register(conn)
	g.log.Info().Str("connection_id", conn.ID).Msg("client connected")
	return conn
}

// Disconnect removes the connection from every room it joined and from
// the registry. Safe to call more than once.
func (g *Gateway) Disconnect(conn *Connection) {
	g.rooms.LeaveAll(conn.ID)
	g.registry.Unregister(conn.ID)
	g.log.Info().Str("connection_id", conn.ID).Msg("client disconnected")
}

// JoinChat subscribes the connection to a room. Membership changes are
// never broadcast.
func (g *Gateway) JoinChat(conn *Connection, roomID string) {
	g.rooms.Join(roomID, conn.ID)
	g.log.Debug().Str("connection_id", conn.ID).Str("room", roomID).Msg("joined chat")
}

// LeaveChat unsubscribes the connection from a room.
func (g *Gateway) LeaveChat(conn *Connection, roomID string) {
	g.rooms.Leave(roomID, conn.ID)
	g.log.Debug().Str("connection_id", conn.ID).Str("room", roomID).Msg("left chat")
}

// SendMessage stamps the sender's payload with an id and timestamp and
// fans it out to the whole room, sender included. The payload is not
// validated; a missing or unknown chatId broadcasts to an empty room.
func (g *Gateway) SendMessage(conn *Connection, fields map[string]any) {
	chatID, _ := fields["chatId"].(string)
	msg := NewMessage(chatID, fields)
	g.dispatcher.BroadcastToRoom(chatID, proto.EventNewMessage, msg.Payload(), "")
}

// Typing relays a typing indication to the rest of the room. The sender
// is excluded and nothing is stored: the gateway does not track who is
// currently typing.
func (g *Gateway) Typing(conn *Connection, data proto.TypingData) {
	g.dispatcher.BroadcastToRoom(data.ChatID, proto.EventUserTyping, proto.UserTyping{
		UserID: data.UserID,
		Pseudo: data.Pseudo,
	}, conn.ID)
}

// StopTyping relays the end of a typing indication, excluding the sender.
func (g *Gateway) StopTyping(conn *Connection, data proto.StopTypingData) {
	g.dispatcher.BroadcastToRoom(data.ChatID, proto.EventUserStopTyping, proto.UserStopTyping{
		UserID: data.UserID,
	}, conn.ID)
}

// PostMessage builds and broadcasts a message on behalf of an HTTP
// caller. It shares the socket path's dispatcher, so room members cannot
// tell a posted message from a socket-sent one. Membership is not
// required to post.
func (g *Gateway) PostMessage(chatID, content string) *Message {
	msg := NewMessage(chatID, map[string]any{"content": content})
	g.dispatcher.BroadcastToRoom(chatID, proto.EventNewMessage, msg.Payload(), "")
	return msg
}
