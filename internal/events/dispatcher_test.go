package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/session-toolbar/internal/domain"
	"github.com/spec-kit/session-toolbar/internal/observability"
)

func TestPublishReachesEverySubscriber(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var calls []string
	d.Subscribe(EventSessionLoggedOut, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventSessionLoggedOut, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.ClientID)
		return nil
	})
	d.Subscribe(EventLocaleChanged, func(context.Context, Event) error {
		calls = append(calls, "locale")
		return nil
	})

	ev := NewEvent(EventSessionLoggedOut, "c1", domain.SessionIdentity{}, nil)
	require.NoError(t, d.Publish(context.Background(), ev))

	assert.Equal(t, []string{"first", "second:c1"}, calls)
	assert.NotEmpty(t, ev.ID)
}

func TestRegisterObserversCountsEvents(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	metrics := observability.NewMetrics()
	RegisterObservers(d, metrics, nil)

	ctx := context.Background()
	require.NoError(t, d.Publish(ctx, NewEvent(EventLocaleChanged, "c1", domain.SessionIdentity{}, LocaleChangedPayload{Code: "english"})))
	require.NoError(t, d.Publish(ctx, NewEvent(EventLocaleChanged, "c1", domain.SessionIdentity{}, nil)))

	assert.Equal(t, int64(2), metrics.EventCount(string(EventLocaleChanged)))
	assert.Zero(t, metrics.EventCount(string(EventSessionLoggedOut)))
}
