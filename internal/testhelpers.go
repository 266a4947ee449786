package internal

import (
	"sync"
	"time"
)

// CreateTestContactSession creates a human-contact session with sample data
func CreateTestContactSession(id, contactName string) *ChatSession {
	return &ChatSession{
		ID:          id,
		ContactName: contactName,
		Kind:        KindSeller,
		Avatar:      ContactDefaultAvatar,
		Messages: []Message{{
			ID:     1,
			Sender: SenderContact,
			Text:   "Halo! Ada yang bisa kami bantu terkait produk dari " + contactName + "?",
			Time:   "10:30",
		}},
		LastMessage: "Halo! Ada yang bisa kami bantu?",
		Timestamp:   "Just now",
	}
}

// CreateTestSessionWithMessages creates an assistant session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *ChatSession {
	s := &ChatSession{
		ID:          id,
		ContactName: AssistantName,
		Kind:        KindAssistant,
		Avatar:      AssistantAvatar,
		Messages:    messages,
	}
	if len(messages) > 0 {
		s.LastMessage = messages[len(messages)-1].Text
		s.Timestamp = "Now"
	}
	return s
}

// ManualScheduler captures scheduled callbacks so tests decide when pending
// replies land.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// Schedule records the callback without running it
func (ms *ManualScheduler) Schedule(d time.Duration, fn func()) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.pending = append(ms.pending, fn)
}

// Fire runs and clears all pending callbacks in order
func (ms *ManualScheduler) Fire() {
	ms.mu.Lock()
	pending := ms.pending
	ms.pending = nil
	ms.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// PendingCount returns how many callbacks are waiting
func (ms *ManualScheduler) PendingCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.pending)
}

// CreateTestEngine creates an engine over an in-memory store with a fixed
// clock, a manual scheduler, and a deterministic random source.
func CreateTestEngine() (*ChatEngine, *ManualScheduler) {
	return CreateTestEngineWithStore(NewSessionStore(NewMemoryStore()))
}

// CreateTestEngineWithStore is CreateTestEngine over a caller-owned store
func CreateTestEngineWithStore(store *SessionStore) (*ChatEngine, *ManualScheduler) {
	scheduler := &ManualScheduler{}
	base := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	engine := NewChatEngine(store,
		WithClock(func() time.Time { return base }),
		WithScheduler(scheduler.Schedule),
		WithRandom(func(n int) int { return 0 }),
	)
	return engine, scheduler
}
