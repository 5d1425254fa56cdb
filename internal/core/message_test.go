package core

import "testing"

func TestNewMessageAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		msg := NewMessage("general", nil)
		if _, dup := seen[msg.ID]; dup {
			t.Fatalf("duplicate message id %s", msg.ID)
		}
		seen[msg.ID] = struct{}{}
	}
}

func TestMessagePayloadPassesFieldsThrough(t *testing.T) {
	fields := map[string]any{
		"content": "hi",
		"author":  map[string]any{"id": "u1", "pseudo": "Alice"},
	}
	msg := NewMessage("general", fields)

	payload := msg.Payload()
	if payload["content"] != "hi" {
		t.Fatalf("content not passed through: %v", payload)
	}
	if _, ok := payload["author"]; !ok {
		t.Fatalf("author not passed through: %v", payload)
	}
	if payload["chatId"] != "general" || payload["id"] != msg.ID {
		t.Fatalf("server fields missing: %v", payload)
	}
}

func TestMessageCopiesSenderFields(t *testing.T) {
	fields := map[string]any{"content": "original"}
	msg := NewMessage("general", fields)

	fields["content"] = "mutated"

	if msg.Payload()["content"] != "original" {
		t.Fatal("message must not alias the sender's map")
	}
}
