package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/umputun/repairbot/pkg/domain"
)

// webhook event names
const (
	EventMessagesUpsert   = "messages.upsert"
	EventConnectionUpdate = "connection.update"
)

// reasons a delivered message is not routed
var (
	ErrGroupMessage   = errors.New("group message")
	ErrOwnMessage     = errors.New("message sent by this instance")
	ErrNotText        = errors.New("not a text message")
	ErrInvalidMessage = errors.New("invalid message format")
)

// Event is a webhook delivery from Evolution API
type Event struct {
	Event    string          `json:"event"`
	Instance string          `json:"instance"`
	Data     json.RawMessage `json:"data"`
}

type messageKey struct {
	RemoteJid string `json:"remoteJid"`
	FromMe    bool   `json:"fromMe"`
	ID        string `json:"id"`
}

type messageContent struct {
	Conversation        string `json:"conversation"`
	ExtendedTextMessage *struct {
		Text string `json:"text"`
	} `json:"extendedTextMessage"`
}

type messageData struct {
	Key      *messageKey     `json:"key"`
	PushName string          `json:"pushName"`
	Message  *messageContent `json:"message"`
}

// envelope covers the three payload shapes the gateway has used: the message itself,
// the message nested under data, and a messages array
type envelope struct {
	messageData
	Data     *messageData  `json:"data"`
	Messages []messageData `json:"messages"`
}

// ParseEvent decodes a webhook body
func ParseEvent(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, fmt.Errorf("decode webhook event: %w", err)
	}
	return ev, nil
}

// Message extracts the inbound text message from a messages.upsert event.
// Group chats, messages sent by the instance itself and non-text messages are rejected.
func (e Event) Message() (domain.InboundMessage, error) {
	if len(e.Data) == 0 {
		return domain.InboundMessage{}, ErrInvalidMessage
	}
	var env envelope
	if err := json.Unmarshal(e.Data, &env); err != nil {
		return domain.InboundMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	md := env.messageData
	switch {
	case md.Message != nil && md.Key != nil:
	case env.Data != nil && env.Data.Message != nil:
		md = *env.Data
	case len(env.Messages) > 0 && env.Messages[0].Message != nil:
		md = env.Messages[0]
	default:
		return domain.InboundMessage{}, ErrInvalidMessage
	}
	return md.inbound()
}

func (m messageData) inbound() (domain.InboundMessage, error) {
	if m.Key == nil || m.Key.RemoteJid == "" {
		return domain.InboundMessage{}, ErrInvalidMessage
	}
	if strings.Contains(m.Key.RemoteJid, "@g.us") {
		return domain.InboundMessage{}, ErrGroupMessage
	}
	if m.Key.FromMe {
		return domain.InboundMessage{}, ErrOwnMessage
	}

	text := m.Message.Conversation
	if text == "" && m.Message.ExtendedTextMessage != nil {
		text = m.Message.ExtendedTextMessage.Text
	}
	if strings.TrimSpace(text) == "" {
		return domain.InboundMessage{}, ErrNotText
	}

	return domain.InboundMessage{
		SenderID:  senderNumber(m.Key.RemoteJid),
		Text:      text,
		MessageID: m.Key.ID,
		PushName:  m.PushName,
	}, nil
}

// senderNumber strips the WhatsApp JID suffix
func senderNumber(jid string) string {
	for _, suffix := range []string{"@s.whatsapp.net", "@c.us"} {
		jid = strings.TrimSuffix(jid, suffix)
	}
	return jid
}
