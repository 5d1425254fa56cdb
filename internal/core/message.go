package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is the transient payload fanned out to a room. It exists only
// for the duration of one broadcast; the gateway stores nothing.
type Message struct {
	ID        string
	ChatID    string
	Timestamp time.Time

	fields map[string]any
}

// NewMessage stamps sender-supplied fields with a server-assigned id and
// timestamp. Ids are random UUIDs: two sends in the same millisecond must
// not collide, which rules out the timestamp-derived scheme.
func NewMessage(chatID string, fields map[string]any) *Message {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Timestamp: time.Now().UTC(),
		fields:    copied,
	}
}

// Payload returns the wire form: the sender's fields plus the
// server-assigned id, chatId and timestamp.
func (m *Message) Payload() map[string]any {
	out := make(map[string]any, len(m.fields)+3)
	for k, v := range m.fields {
		out[k] = v
	}
	out["id"] = m.ID
	out["chatId"] = m.ChatID
	out["timestamp"] = m.Timestamp
	return out
}
