package session

import (
	"errors"
	"time"
)

// TimeLayout is the human-readable time-of-day stamp carried on every turn.
const TimeLayout = "15:04"

var (
	// ErrNotFound is returned when a session id is unknown to the store.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidIndex is returned when a turn index is outside the
	// session's transcript bounds.
	ErrInvalidIndex = errors.New("invalid message index")
)

// Turn is a single conversation turn. Content and Time may be rewritten by
// an explicit edit; nothing else about a turn ever changes.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// Session is an ordered transcript with its creation timestamp. Created is
// fixed at creation and never updated.
type Session struct {
	Turns   []Turn    `json:"messages"`
	Created time.Time `json:"created"`
}

// Info is the derived per-session view returned by List.
type Info struct {
	Created      time.Time `json:"created"`
	MessageCount int       `json:"message_count"`
}

// UserTurn builds a user turn stamped with the given time.
func UserTurn(content string, at time.Time) Turn {
	return Turn{Role: "user", Content: content, Time: at.Format(TimeLayout)}
}

// AssistantTurn builds an assistant turn stamped with the given time.
func AssistantTurn(content string, at time.Time) Turn {
	return Turn{Role: "assistant", Content: content, Time: at.Format(TimeLayout)}
}
