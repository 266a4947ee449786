package internal

// Tab identifies which half of the chat view is active. It filters the
// session list; it does not partition the data.
type Tab string

const (
	TabAssistant Tab = "assistant"
	TabInbox     Tab = "inbox"
)

// SessionKind classifies a chat session. Seller and courier sessions behave
// identically; the distinction only drives display defaults and suggestions.
// The JSON values match the persisted blob format.
type SessionKind string

const (
	KindAssistant SessionKind = "ai"
	KindSeller    SessionKind = "seller"
	KindCourier   SessionKind = "courier"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "bot"
	SenderContact   Sender = "seller"
)

const (
	// AssistantSessionID is the fixed id of the default assistant session
	// created when no persisted state exists.
	AssistantSessionID = "ai-assistant"

	// AssistantName is the brand name shown for assistant sessions.
	AssistantName = "RANTU AI"

	AssistantAvatar      = "avatars/rantu-ai.png"
	ContactDefaultAvatar = "avatars/seller-default.png"
)

// Message is one entry in a session thread. Messages are append-only:
// once added they are never edited or removed.
type Message struct {
	ID     int64  `json:"id"`
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"` // display label (hour:minute), not sortable
}

// ChatSession is one independent conversation thread, either with the
// assistant or with a human contact (seller or courier).
type ChatSession struct {
	ID          string      `json:"id"`
	ContactName string      `json:"contactName"`
	Kind        SessionKind `json:"type"`
	Avatar      string      `json:"avatar,omitempty"`
	Messages    []Message   `json:"messages"`

	// LastMessage and Timestamp mirror the tail of Messages for list
	// previews. They are derived state, updated on every append.
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
}

// IsHuman reports whether the session is with a human contact rather
// than the assistant.
func (s *ChatSession) IsHuman() bool {
	return s.Kind != KindAssistant
}

// MatchesTab reports whether the session belongs under the given tab.
func (s *ChatSession) MatchesTab(tab Tab) bool {
	if tab == TabAssistant {
		return s.Kind == KindAssistant
	}
	return s.IsHuman()
}

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Farm        string   `json:"farm"`
	Price       int64    `json:"price"` // rupiah
	Unit        string   `json:"unit"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}

// CartItem is a product plus the quantity in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// OrderStatus is the fulfillment stage of an order.
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "Confirmed"
	StatusPreparing OrderStatus = "Preparing"
	StatusShipping  OrderStatus = "Shipping"
	StatusDelivered OrderStatus = "Delivered"
)

// Order is a placed order.
type Order struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Status  OrderStatus `json:"status"`
	Total   int64       `json:"total"`
	Courier string      `json:"courier,omitempty"`
}
