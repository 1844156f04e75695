package oreum

import (
	"strconv"
	"time"
)

// ChatMessage is a single immutable turn in a chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// WelcomeMessage is the model turn every transcript starts with.
func WelcomeMessage(now time.Time) ChatMessage {
	return ChatMessage{
		ID:        "welcome",
		Role:      RoleModel,
		Text:      WelcomeText,
		Timestamp: now,
	}
}

// NewExchange builds the user and model turns of one completed exchange.
// IDs are derived from the timestamp: unique within a single-user session,
// not globally.
func NewExchange(now time.Time, userText, modelText string) (ChatMessage, ChatMessage) {
	n := now.UnixNano()
	return ChatMessage{
			ID:        strconv.FormatInt(n, 10),
			Role:      RoleUser,
			Text:      userText,
			Timestamp: now,
		}, ChatMessage{
			ID:        strconv.FormatInt(n+1, 10),
			Role:      RoleModel,
			Text:      modelText,
			Timestamp: now,
		}
}
