package chat

import "time"

// MessageType discriminates the payloads exchanged over the chat socket.
type MessageType string

const (
	// MessageTypeChat is a regular text message from a named participant.
	MessageTypeChat MessageType = "chat_message"
	// MessageTypeLogin announces a participant joining the chat.
	MessageTypeLogin MessageType = "login_message"
)

// Message is the wire format for chat traffic in both directions.
type Message struct {
	Type   MessageType `json:"type"`
	Name   string      `json:"name,omitempty"`
	Text   string      `json:"text,omitempty"`
	SentAt time.Time   `json:"sent_at"`
}
