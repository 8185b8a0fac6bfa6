package chat

import "github.com/google/uuid"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of a coach chat conversation. Turns are ephemeral,
// they live in the client session and are never persisted. Assistant turns
// start empty and accumulate content as stream chunks arrive.
type Turn struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewUserTurn(content string) Turn {
	return Turn{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
	}
}

func NewAssistantTurn() Turn {
	return Turn{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
	}
}
