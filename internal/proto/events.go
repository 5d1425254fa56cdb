package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

const (
	InboundJoinChat    = "join-chat"
	InboundLeaveChat   = "leave-chat"
	InboundSendMessage = "send-message"
	InboundTyping      = "typing"
	InboundStopTyping  = "stop-typing"

	EventNewMessage     = "new-message"
	EventUserTyping     = "user-typing"
	EventUserStopTyping = "user-stop-typing"
)

// TypingData announces that a user started typing in a room.
type TypingData struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
	Pseudo string `json:"pseudo"`
}

// StopTypingData announces that a user stopped typing.
type StopTypingData struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

// UserTyping is relayed to the rest of the room while a user types.
type UserTyping struct {
	UserID string `json:"userId"`
	Pseudo string `json:"pseudo"`
}

// UserStopTyping clears a typing indication.
type UserStopTyping struct {
	UserID string `json:"userId"`
}
