package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/auth"
	"github.com/spec-kit/session-toolbar/internal/domain"
	"github.com/spec-kit/session-toolbar/internal/observability"
	"github.com/spec-kit/session-toolbar/internal/storage"
)

// ClaimsDecoder turns a raw session token into claims.
type ClaimsDecoder interface {
	Decode(raw string) (*auth.Claims, error)
}

// SessionState holds the identity derived from the stored token for the
// lifetime of one toolbar display.
type SessionState struct {
	store   storage.KeyValueStore
	decoder ClaimsDecoder
	logger  *zap.Logger

	once      sync.Once
	mu        sync.RWMutex
	identity  domain.SessionIdentity
	decodeErr error
}

// NewSessionState builds an uninitialized session state.
func NewSessionState(store storage.KeyValueStore, decoder ClaimsDecoder, logger *zap.Logger) *SessionState {
	if decoder == nil {
		decoder = auth.NewTokenDecoder()
	}
	return &SessionState{store: store, decoder: decoder, logger: observability.OrNop(logger)}
}

// Initialize reads and decodes the stored token on the first call and
// returns the memoized identity on every call.
func (s *SessionState) Initialize(ctx context.Context) domain.SessionIdentity {
	s.once.Do(func() {
		raw, present := s.readToken(ctx)
		identity, err := s.identify(raw, present)

		s.mu.Lock()
		s.identity, s.decodeErr = identity, err
		s.mu.Unlock()
	})
	return s.Identity()
}

// Identity returns the memoized identity, anonymous before Initialize.
func (s *SessionState) Identity() domain.SessionIdentity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// DecodeErr reports why the stored token was rejected, if it was.
func (s *SessionState) DecodeErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decodeErr
}

// Identify maps a raw token to an identity. Absent or undecodable tokens
// yield the anonymous identity; the decode failure is logged, not returned.
func (s *SessionState) Identify(raw string, present bool) domain.SessionIdentity {
	identity, _ := s.identify(raw, present)
	return identity
}

func (s *SessionState) identify(raw string, present bool) (domain.SessionIdentity, error) {
	if !present {
		return domain.SessionIdentity{}, nil
	}
	claims, err := s.decoder.Decode(raw)
	if err != nil {
		s.logger.Warn("failed to decode session token", zap.Error(err))
		return domain.SessionIdentity{}, err
	}
	return domain.SessionIdentity{
		Username:  claims.Username,
		RoleLabel: domain.RoleFor(claims.IsPlatformAdmin),
	}, nil
}

func (s *SessionState) readToken(ctx context.Context) (string, bool) {
	if s.store == nil {
		return "", false
	}
	raw, ok, err := s.store.Get(ctx, storage.TokenKey)
	if err != nil {
		s.logger.Warn("failed to read session token", zap.Error(err))
		return "", false
	}
	return raw, ok
}
