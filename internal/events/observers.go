package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/observability"
)

// AllEventTypes lists every event a toolbar can publish.
var AllEventTypes = []EventType{
	EventSessionMounted,
	EventTokenDecodeFailed,
	EventLocaleChanged,
	EventSessionLoggedOut,
}

// RegisterObservers counts and logs every toolbar event.
func RegisterObservers(d Dispatcher, metrics *observability.Metrics, logger *zap.Logger) {
	logger = observability.OrNop(logger)
	for _, eventType := range AllEventTypes {
		d.Subscribe(eventType, func(_ context.Context, e Event) error {
			metrics.RecordEvent(string(e.Type))
			logger.Debug("toolbar event",
				zap.String("event_type", string(e.Type)),
				zap.String("event_id", e.ID),
				zap.String("client_id", e.ClientID),
				zap.String("username", e.Identity.Username))
			return nil
		})
	}
}
