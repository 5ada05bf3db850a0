package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/session-toolbar/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionMounted    EventType = "session_mounted"
	EventTokenDecodeFailed EventType = "token_decode_failed"
	EventLocaleChanged     EventType = "locale_changed"
	EventSessionLoggedOut  EventType = "session_logged_out"
)

// Event represents something a toolbar did on behalf of a client.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	ClientID  string                 `json:"client_id,omitempty"`
	Identity  domain.SessionIdentity `json:"identity"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   any                    `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, clientID string, identity domain.SessionIdentity, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ClientID:  clientID,
		Identity:  identity,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LocaleChangedPayload payload.
type LocaleChangedPayload struct {
	Code string `json:"code"`
}
