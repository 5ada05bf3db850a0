package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/domain"
	"github.com/spec-kit/session-toolbar/internal/events"
	"github.com/spec-kit/session-toolbar/internal/observability"
	"github.com/spec-kit/session-toolbar/internal/storage"
)

// ErrUnknownAction is returned by Click for keys that name no menu action.
var ErrUnknownAction = errors.New("unknown menu action")

// ToolbarDependencies bundles collaborators for one mounted toolbar.
type ToolbarDependencies struct {
	ClientID  string
	Store     storage.KeyValueStore
	Decoder   ClaimsDecoder
	Locale    LocaleService
	Navigator Navigator
	Events    events.Dispatcher
	Logger    *zap.Logger
}

// Toolbar is the session-aware navigation control for one client.
type Toolbar struct {
	clientID string
	session  *SessionState
	menu     *MenuBuilder
	locale   *LocaleSwitcher
	logout   *LogoutHandler
	events   events.Dispatcher
	logger   *zap.Logger

	mountOnce sync.Once
}

// NewToolbar wires the toolbar's components together.
func NewToolbar(deps ToolbarDependencies) *Toolbar {
	logger := observability.OrNop(deps.Logger)
	if deps.ClientID != "" {
		logger = logger.With(zap.String("client_id", deps.ClientID))
	}

	t := &Toolbar{
		clientID: deps.ClientID,
		session:  NewSessionState(deps.Store, deps.Decoder, logger),
		locale:   NewLocaleSwitcher(deps.Locale),
		logout:   NewLogoutHandler(deps.Store, deps.Navigator, logger),
		events:   deps.Events,
		logger:   logger,
	}
	t.menu = NewMenuBuilder(deps.Navigator, t.Logout)
	return t
}

// Mount derives the session identity. Only the first call reads storage.
func (t *Toolbar) Mount(ctx context.Context) domain.SessionIdentity {
	identity := t.session.Initialize(ctx)
	t.mountOnce.Do(func() {
		if err := t.session.DecodeErr(); err != nil {
			t.publish(ctx, events.EventTokenDecodeFailed, identity, fmt.Sprint(err))
		}
		t.publish(ctx, events.EventSessionMounted, identity, nil)
	})
	return identity
}

// Identity returns the mounted identity.
func (t *Toolbar) Identity() domain.SessionIdentity {
	return t.session.Identity()
}

// Menu builds the dropdown entries for the mounted identity.
func (t *Toolbar) Menu() []domain.MenuEntry {
	return t.menu.Build(t.session.Identity())
}

// Click activates the menu action named key.
func (t *Toolbar) Click(ctx context.Context, key string) error {
	entry, ok := domain.FindAction(t.Menu(), key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, key)
	}
	return t.menu.Activate(ctx, entry)
}

// Logout clears the session and navigates to login.
func (t *Toolbar) Logout(ctx context.Context) {
	identity := t.session.Identity()
	t.logout.Logout(ctx)
	t.logger.Info("session logged out", zap.String("username", identity.Username))
	t.publish(ctx, events.EventSessionLoggedOut, identity, nil)
}

// SelectLocale forwards a language choice to the translation service.
func (t *Toolbar) SelectLocale(ctx context.Context, code string) {
	t.locale.Select(code)
	if !t.locale.Available() {
		return
	}
	t.publish(ctx, events.EventLocaleChanged, t.session.Identity(), events.LocaleChangedPayload{Code: code})
}

// LocaleOptions returns the language choices.
func (t *Toolbar) LocaleOptions() []domain.LocaleOption {
	return t.locale.Options()
}

func (t *Toolbar) publish(ctx context.Context, eventType events.EventType, identity domain.SessionIdentity, payload any) {
	if t.events == nil {
		return
	}
	if err := t.events.Publish(ctx, events.NewEvent(eventType, t.clientID, identity, payload)); err != nil {
		t.logger.Warn("failed to publish toolbar event", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
