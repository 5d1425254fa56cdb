package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/noskills/chat-gateway/internal/core"
	"github.com/noskills/chat-gateway/internal/proto"
)

// wsTransport buffers outbound events for one peer. Send never blocks: a
// full buffer means a slow consumer and the event is dropped.
type wsTransport struct {
	events chan proto.Outbound
	log    *zerolog.Logger
}

func newWSTransport(logger *zerolog.Logger) *wsTransport {
	return &wsTransport{
		events: make(chan proto.Outbound, 16),
		log:    logger,
	}
}

func (t *wsTransport) Send(event string, payload any) {
	select {
	case t.events <- proto.Outbound{Event: event, Data: payload}:
	default:
		t.log.Warn().Str("event", event).Msg("slow consumer, event dropped")
	}
}

// WSHandler upgrades HTTP connections and bridges them to the chat gateway.
type WSHandler struct {
	gateway   *core.Gateway
	readLimit int64
	log       *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(gw *core.Gateway, readLimit int64, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{gateway: gw, readLimit: readLimit, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	transport := newWSTransport(h.log)
	client := h.gateway.Connect(transport)
	defer h.gateway.Disconnect(client)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, transport)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *core.Connection) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}
		h.dispatch(client, inbound)
	}
}

// dispatch routes one inbound frame to the gateway. Malformed payloads are
// dropped without feedback: the protocol defines no error event toward the
// sender, so the most we do is log.
func (h *WSHandler) dispatch(client *core.Connection, inbound proto.Inbound) {
	switch inbound.Event {
	case proto.InboundJoinChat:
		var roomID string
		if err := json.Unmarshal(inbound.Data, &roomID); err != nil {
			h.log.Debug().Err(err).Str("connection_id", client.ID).Msg("malformed join-chat")
			return
		}
		h.gateway.JoinChat(client, roomID)
	case proto.InboundLeaveChat:
		var roomID string
		if err := json.Unmarshal(inbound.Data, &roomID); err != nil {
			h.log.Debug().Err(err).Str("connection_id", client.ID).Msg("malformed leave-chat")
			return
		}
		h.gateway.LeaveChat(client, roomID)
	case proto.InboundSendMessage:
		var fields map[string]any
		if err := json.Unmarshal(inbound.Data, &fields); err != nil {
			h.log.Debug().Err(err).Str("connection_id", client.ID).Msg("malformed send-message")
			return
		}
		h.gateway.SendMessage(client, fields)
	case proto.InboundTyping:
		var data proto.TypingData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			h.log.Debug().Err(err).Str("connection_id", client.ID).Msg("malformed typing")
			return
		}
		h.gateway.Typing(client, data)
	case proto.InboundStopTyping:
		var data proto.StopTypingData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			h.log.Debug().Err(err).Str("connection_id", client.ID).Msg("malformed stop-typing")
			return
		}
		h.gateway.StopTyping(client, data)
	default:
		h.log.Debug().Str("event", inbound.Event).Str("connection_id", client.ID).Msg("unknown inbound event")
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, transport *wsTransport) error {
	for {
		select {
		case outbound := <-transport.events:
			if err := wsjson.Write(ctx, conn, outbound); err != nil {
				h.log.Error().Err(err).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
