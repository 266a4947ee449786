package internal

import (
	"encoding/json"
	"testing"
)

func TestChatSession_IsHuman(t *testing.T) {
	tests := []struct {
		name string
		kind SessionKind
		want bool
	}{
		{name: "assistant", kind: KindAssistant, want: false},
		{name: "seller", kind: KindSeller, want: true},
		{name: "courier", kind: KindCourier, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ChatSession{Kind: tt.kind}
			if got := s.IsHuman(); got != tt.want {
				t.Errorf("IsHuman() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChatSession_MatchesTab(t *testing.T) {
	assistant := &ChatSession{Kind: KindAssistant}
	seller := &ChatSession{Kind: KindSeller}
	courier := &ChatSession{Kind: KindCourier}

	if !assistant.MatchesTab(TabAssistant) || assistant.MatchesTab(TabInbox) {
		t.Error("assistant sessions belong under the assistant tab only")
	}
	if !seller.MatchesTab(TabInbox) || seller.MatchesTab(TabAssistant) {
		t.Error("seller sessions belong under the inbox tab only")
	}
	if !courier.MatchesTab(TabInbox) {
		t.Error("courier sessions belong under the inbox tab")
	}
}

func TestChatSession_JSONFieldNames(t *testing.T) {
	// The blob format keeps the original field names; a rename would break
	// hydration of existing data.
	data, err := json.Marshal(CreateTestContactSession("seller-1", "Tani Makmur"))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	for _, field := range []string{"id", "contactName", "type", "messages", "lastMessage", "timestamp"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("serialized session missing field %q", field)
		}
	}
	if raw["type"] != string(KindSeller) {
		t.Errorf("type field = %v, want %q", raw["type"], KindSeller)
	}
}

func TestMessage_PreservesNewlines(t *testing.T) {
	text := "line one\n\nline two\nline three"
	data, err := json.Marshal(Message{ID: 1, Sender: SenderUser, Text: text, Time: "10:30"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.Text != text {
		t.Errorf("embedded newlines not preserved: %q", decoded.Text)
	}
}
