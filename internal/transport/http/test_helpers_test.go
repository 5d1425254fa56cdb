package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/noskills/chat-gateway/internal/config"
	"github.com/noskills/chat-gateway/internal/core"
	"github.com/noskills/chat-gateway/internal/proto"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.New(nil)
	gateway := core.NewGateway(&logger)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.RateLimit = 0 // not under test here

	server := NewServer(gateway, &cfg, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s data: %v", event, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Event: event, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", event, err)
	}
}

type receivedFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readEvent(t *testing.T, ctx context.Context, conn *websocket.Conn) receivedFrame {
	t.Helper()

	var frame receivedFrame
	if err := wsjson.Read(ctx, conn, &frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

// joinRoom joins and waits for the membership change to land before the
// caller triggers broadcasts from another connection.
func joinRoom(t *testing.T, ctx context.Context, conn *websocket.Conn, room string) {
	t.Helper()

	sendEvent(t, ctx, conn, proto.InboundJoinChat, room)
	time.Sleep(100 * time.Millisecond)
}
