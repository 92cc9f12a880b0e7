package domain

import "time"

// Role of a conversation participant
type Role string

// supported roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single entry in a sender's conversation log
type Turn struct {
	SenderID  string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// InboundMessage is a text message received from the messaging gateway
type InboundMessage struct {
	SenderID  string
	Text      string
	MessageID string
	PushName  string
	Timestamp time.Time
}
