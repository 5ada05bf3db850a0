package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/domain"
	"github.com/spec-kit/session-toolbar/internal/observability"
	"github.com/spec-kit/session-toolbar/internal/storage"
)

// LogoutHandler clears the stored session and sends the client to login.
type LogoutHandler struct {
	store     storage.KeyValueStore
	navigator Navigator
	logger    *zap.Logger
}

// NewLogoutHandler constructs a handler.
func NewLogoutHandler(store storage.KeyValueStore, navigator Navigator, logger *zap.Logger) *LogoutHandler {
	return &LogoutHandler{store: store, navigator: navigator, logger: observability.OrNop(logger)}
}

// Logout removes the token, then navigates to the login route. It is safe
// to call repeatedly; every call navigates.
func (h *LogoutHandler) Logout(ctx context.Context) {
	if h.store != nil {
		if err := h.store.Remove(ctx, storage.TokenKey); err != nil {
			h.logger.Warn("failed to remove session token", zap.Error(err))
		}
	}
	if h.navigator != nil {
		h.navigator.Navigate(ctx, domain.PathLogin)
	}
}
