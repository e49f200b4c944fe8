package project

// Status is the delivery state shown by chat variants.
type Status string

const (
	StatusNone      Status = ""
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// Valid reports whether s is empty or a known delivery state.
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusSending, StatusSent, StatusDelivered, StatusRead:
		return true
	default:
		return false
	}
}

// Attachment is an image shown under a message bubble.
type Attachment struct {
	URL string
	Alt string
}

// Message is one chat line or post unit. Content is raw author text.
type Message struct {
	ID          string
	Sender      string
	Content     string
	Outgoing    bool
	Timestamp   string
	AvatarURL   string
	Attachments []Attachment
	RoleColor   string
	Status      Status
	Reaction    string
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	out := m
	if m.Attachments != nil {
		out.Attachments = make([]Attachment, len(m.Attachments))
		copy(out.Attachments, m.Attachments)
	}
	return out
}
