package internal

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ReplyDelay is how long a contact or the assistant "types" before the
// synthesized reply lands.
const ReplyDelay = 1500 * time.Millisecond

// Handoff is the payload a product or order page passes when the user asks
// to chat with a human contact. A nil handoff leaves the engine untouched.
type Handoff struct {
	ContactName string
	Kind        SessionKind // KindSeller or KindCourier; empty means seller
}

// ChatEngine owns the session collection and the active view state. It is
// the single writer of both: every mutation goes through its methods, and
// each one snapshots the full session list to the store before returning.
// Scheduled replies run on timer goroutines, so the mutex serializes them
// onto the same state.
type ChatEngine struct {
	mu sync.Mutex

	sessions map[string]*ChatSession
	order    []string // session ids, newest first

	activeTab       Tab
	activeSessionID string
	composing       bool

	store *SessionStore // nil means in-memory only

	delay    time.Duration
	now      func() time.Time
	schedule func(d time.Duration, fn func())
	pick     func(n int) int

	lastMessageID int64
}

// EngineOption configures a ChatEngine at construction
type EngineOption func(*ChatEngine)

// WithClock replaces the engine's time source
func WithClock(now func() time.Time) EngineOption {
	return func(e *ChatEngine) { e.now = now }
}

// WithScheduler replaces the delayed-reply scheduler. Tests pass a
// synchronous or capturing scheduler to control when replies land.
func WithScheduler(schedule func(d time.Duration, fn func())) EngineOption {
	return func(e *ChatEngine) { e.schedule = schedule }
}

// WithReplyDelay overrides the fixed reply delay
func WithReplyDelay(d time.Duration) EngineOption {
	return func(e *ChatEngine) { e.delay = d }
}

// WithRandom replaces the random source used for fallback contact replies
func WithRandom(pick func(n int) int) EngineOption {
	return func(e *ChatEngine) { e.pick = pick }
}

// NewChatEngine creates the engine and hydrates it from the store. A nil
// store, an empty blob, or a malformed blob all yield the single default
// assistant session; malformed state is logged, never fatal.
func NewChatEngine(store *SessionStore, opts ...EngineOption) *ChatEngine {
	e := &ChatEngine{
		sessions:  make(map[string]*ChatSession),
		activeTab: TabAssistant,
		store:     store,
		delay:     ReplyDelay,
		now:       time.Now,
		schedule:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		pick:      rand.Intn,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.hydrate()
	return e
}

// DefaultAssistantSession builds the seed session present on first run
func DefaultAssistantSession() *ChatSession {
	return &ChatSession{
		ID:          AssistantSessionID,
		ContactName: AssistantName,
		Kind:        KindAssistant,
		Avatar:      AssistantAvatar,
		Messages: []Message{{
			ID:     1,
			Sender: SenderAssistant,
			Text:   welcomeText,
			Time:   "10:30 AM",
		}},
		LastMessage: "Silakan pilih topik di bawah atau ketik pertanyaan Anda.",
		Timestamp:   "Now",
	}
}

func (e *ChatEngine) hydrate() {
	var loaded []*ChatSession
	if e.store != nil {
		var err error
		loaded, err = e.store.Load()
		if err != nil {
			LogWarn("Discarding unreadable chat state: %v", err)
			loaded = nil
		}
	}

	if len(loaded) == 0 {
		loaded = []*ChatSession{DefaultAssistantSession()}
	}

	for _, s := range loaded {
		if _, dup := e.sessions[s.ID]; dup {
			continue
		}
		e.sessions[s.ID] = s
		e.order = append(e.order, s.ID)
	}

	if _, ok := e.sessions[AssistantSessionID]; ok {
		e.activeSessionID = AssistantSessionID
	} else {
		e.syncActiveToTabLocked()
	}
}

// nextMessageID returns a unix-millisecond id, bumped past the previous one
// so two appends in the same millisecond never collide.
func (e *ChatEngine) nextMessageID() int64 {
	id := e.now().UnixMilli()
	if id <= e.lastMessageID {
		id = e.lastMessageID + 1
	}
	e.lastMessageID = id
	return id
}

func (e *ChatEngine) timeLabel() string {
	return e.now().Format("15:04")
}

func (e *ChatEngine) insertFrontLocked(s *ChatSession) {
	e.sessions[s.ID] = s
	e.order = append([]string{s.ID}, e.order...)
}

func (e *ChatEngine) persistLocked() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.orderedLocked()); err != nil {
		// Durability is best-effort: keep serving in-memory state.
		LogWarn("Failed to persist chat sessions: %v", err)
	}
}

func (e *ChatEngine) orderedLocked() []*ChatSession {
	out := make([]*ChatSession, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.sessions[id])
	}
	return out
}

// syncActiveToTabLocked keeps activeSessionID consistent with the tab
// filter: if the active session no longer matches, pick the first session
// that does, or clear the selection.
func (e *ChatEngine) syncActiveToTabLocked() {
	if s, ok := e.sessions[e.activeSessionID]; ok && s.MatchesTab(e.activeTab) {
		return
	}
	for _, id := range e.order {
		if e.sessions[id].MatchesTab(e.activeTab) {
			e.activeSessionID = id
			return
		}
	}
	e.activeSessionID = ""
}

// ResolveContact routes a human-contact handoff to a session: it forces the
// inbox tab, resumes the existing session for that contact name if one
// exists, and otherwise creates one seeded with the contact's greeting.
// Calling it repeatedly with the same name never creates duplicates.
func (e *ChatEngine) ResolveContact(contactName string, kind SessionKind) *ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.activeTab = TabInbox

	for _, id := range e.order {
		s := e.sessions[id]
		if s.IsHuman() && s.ContactName == contactName {
			if e.activeSessionID != s.ID {
				e.activeSessionID = s.ID
			}
			return s
		}
	}

	if kind != KindSeller && kind != KindCourier {
		kind = KindSeller
	}

	id := fmt.Sprintf("seller-%d", e.now().UnixMilli())
	for _, taken := e.sessions[id]; taken; _, taken = e.sessions[id] {
		id += "0"
	}

	s := &ChatSession{
		ID:          id,
		ContactName: contactName,
		Kind:        kind,
		Avatar:      ContactDefaultAvatar,
		Messages: []Message{{
			ID:     e.nextMessageID(),
			Sender: SenderContact,
			Text:   fmt.Sprintf("Halo! Ada yang bisa kami bantu terkait produk dari %s?", contactName),
			Time:   e.timeLabel(),
		}},
		LastMessage: "Halo! Ada yang bisa kami bantu?",
		Timestamp:   "Just now",
	}

	e.insertFrontLocked(s)
	e.activeSessionID = id
	e.persistLocked()
	return s
}

// ApplyHandoff applies a page handoff, if any
func (e *ChatEngine) ApplyHandoff(h *Handoff) {
	if h == nil || h.ContactName == "" {
		return
	}
	e.ResolveContact(h.ContactName, h.Kind)
}

// StartAssistantSession opens a fresh assistant thread. Unlike contact
// sessions there is no dedup: every call creates a new parallel thread.
func (e *ChatEngine) StartAssistantSession() *ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := fmt.Sprintf("ai-%d", e.now().UnixMilli())
	for _, taken := e.sessions[id]; taken; _, taken = e.sessions[id] {
		id += "0"
	}

	s := &ChatSession{
		ID:          id,
		ContactName: AssistantName,
		Kind:        KindAssistant,
		Avatar:      AssistantAvatar,
		Messages: []Message{{
			ID:     e.nextMessageID(),
			Sender: SenderAssistant,
			Text:   welcomeText,
			Time:   e.timeLabel(),
		}},
		LastMessage: "Percakapan baru dimulai.",
		Timestamp:   "Now",
	}

	e.insertFrontLocked(s)
	e.activeSessionID = id
	e.activeTab = TabAssistant
	e.persistLocked()
	return s
}

// SelectSession activates an existing session regardless of the current
// tab filter. Unknown ids are ignored.
func (e *ChatEngine) SelectSession(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[sessionID]; ok {
		e.activeSessionID = sessionID
	}
}

// SetTab switches the view filter and auto-corrects the active selection
func (e *ChatEngine) SetTab(tab Tab) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.activeTab = tab
	e.syncActiveToTabLocked()
}

// ApplyTabParam maps a navigation query parameter onto the tab. The value
// "ai" is accepted as an alias for the assistant tab; anything else leaves
// the current tab unchanged.
func (e *ChatEngine) ApplyTabParam(param string) {
	switch param {
	case "inbox":
		e.SetTab(TabInbox)
	case "assistant", "ai":
		e.SetTab(TabAssistant)
	}
}

// SendMessage appends a user message to the given session and schedules a
// synthesized reply after the fixed delay. Whitespace-only text and unknown
// session ids are silently ignored. The reply always lands in the session
// the send targeted, even if the user has since switched views; pending
// replies are never cancelled.
func (e *ChatEngine) SendMessage(sessionID, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	e.mu.Lock()
	s, ok := e.sessions[sessionID]
	if !ok {
		e.mu.Unlock()
		return false
	}

	s.Messages = append(s.Messages, Message{
		ID:     e.nextMessageID(),
		Sender: SenderUser,
		Text:   text,
		Time:   e.timeLabel(),
	})
	s.LastMessage = text
	s.Timestamp = "Now"
	e.persistLocked()
	e.composing = true
	e.mu.Unlock()

	e.schedule(e.delay, func() {
		e.deliverReply(sessionID, text)
	})
	return true
}

func (e *ChatEngine) deliverReply(sessionID, userText string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		e.composing = false
		return
	}

	reply := SynthesizeReply(s.Kind, userText, e.pick)
	sender := SenderAssistant
	if s.IsHuman() {
		sender = SenderContact
	}

	s.Messages = append(s.Messages, Message{
		ID:     e.nextMessageID(),
		Sender: sender,
		Text:   reply,
		Time:   e.timeLabel(),
	})
	s.LastMessage = reply
	s.Timestamp = "Now"
	e.persistLocked()
	e.composing = false
}

// Sessions returns all sessions, newest first
func (e *ChatEngine) Sessions() []*ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orderedLocked()
}

// FilteredSessions returns the sessions visible under the active tab
func (e *ChatEngine) FilteredSessions() []*ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*ChatSession
	for _, id := range e.order {
		if s := e.sessions[id]; s.MatchesTab(e.activeTab) {
			out = append(out, s)
		}
	}
	return out
}

// Session returns the session with the given id, or nil
func (e *ChatEngine) Session(sessionID string) *ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[sessionID]
}

// ActiveSession returns the currently displayed session, or nil when the
// active tab has no sessions
func (e *ChatEngine) ActiveSession() *ChatSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activeSessionID == "" {
		return nil
	}
	return e.sessions[e.activeSessionID]
}

// ActiveSessionID returns the id of the displayed session ("" when none)
func (e *ChatEngine) ActiveSessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeSessionID
}

// ActiveTab returns the current view filter
func (e *ChatEngine) ActiveTab() Tab {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeTab
}

// Composing reports whether a reply is pending. Consumers render it as a
// typing indicator.
func (e *ChatEngine) Composing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.composing
}
