package core

import "github.com/google/uuid"

// Conversation roles understood by text generator providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged conversation turn. The mind-map transcript
// is an ordered, append-only slice of messages; providers translate roles
// into their native chat formats.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system-role message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user-role message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewID generates a new unique identifier for sessions and invocations.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }
