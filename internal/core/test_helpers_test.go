package core

import (
	"testing"

	"github.com/rs/zerolog"
)

type sentEvent struct {
	Event   string
	Payload any
}

// fakeTransport records events in a buffered channel, dropping on overflow
// like a real slow-consumer transport would.
type fakeTransport struct {
	events chan sentEvent
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{events: make(chan sentEvent, 64)}
}

func (f *fakeTransport) Send(event string, payload any) {
	select {
	case f.events <- sentEvent{Event: event, Payload: payload}:
	default:
	}
}

func testGateway() *Gateway {
	logger := zerolog.New(nil)
	return NewGateway(&logger)
}

// mustReceive pops the next delivered event; dispatch is synchronous, so
// anything expected is already buffered.
func mustReceive(t *testing.T, ft *fakeTransport, event string) sentEvent {
	t.Helper()
	select {
	case ev := <-ft.events:
		if ev.Event != event {
			t.Fatalf("expected event %q, got %q", event, ev.Event)
		}
		return ev
	default:
		t.Fatalf("expected event %q, got none", event)
	}
	return sentEvent{}
}

func assertNoEvent(t *testing.T, ft *fakeTransport) {
	t.Helper()
	select {
	case ev := <-ft.events:
		t.Fatalf("unexpected event %q", ev.Event)
	default:
	}
}
