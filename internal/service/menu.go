package service

import (
	"context"
	"errors"

	"github.com/spec-kit/session-toolbar/internal/domain"
)

// Stable menu keys.
const (
	MenuKeyUsername      = "username"
	MenuKeyDivider1      = "divider-1"
	MenuKeyLoginSettings = "user_profile_login_settings"
	MenuKeyMyClusters    = "user_profile_clusters"
	MenuKeyDivider2      = "divider-2"
	MenuKeyLogout        = "logout"
)

// ErrNotActionable is returned when activating an identity or divider entry.
var ErrNotActionable = errors.New("menu entry has no action")

// MenuBuilder lays out the session dropdown. Every role sees the same
// actions; the role only changes the identity row.
type MenuBuilder struct {
	navigator Navigator
	logout    func(ctx context.Context)
}

// NewMenuBuilder binds navigation and logout callbacks into built menus.
func NewMenuBuilder(navigator Navigator, logout func(ctx context.Context)) *MenuBuilder {
	return &MenuBuilder{navigator: navigator, logout: logout}
}

// Build returns the six menu entries for identity. Nothing is invoked.
func (b *MenuBuilder) Build(identity domain.SessionIdentity) []domain.MenuEntry {
	shown := identity
	return []domain.MenuEntry{
		{Key: MenuKeyUsername, Kind: domain.MenuEntryIdentity, Identity: &shown},
		{Key: MenuKeyDivider1, Kind: domain.MenuEntryDivider},
		{
			Key:    MenuKeyLoginSettings,
			Kind:   domain.MenuEntryAction,
			Label:  "Login Settings",
			Icon:   "fa-solid fa-key",
			Target: domain.PathLoginSettings,
		},
		{
			Key:    MenuKeyMyClusters,
			Kind:   domain.MenuEntryAction,
			Label:  "My Clusters",
			Icon:   "fa-solid fa-server",
			Target: domain.PathMyClusters,
		},
		{Key: MenuKeyDivider2, Kind: domain.MenuEntryDivider},
		{
			Key:    MenuKeyLogout,
			Kind:   domain.MenuEntryAction,
			Label:  "Logout",
			Icon:   "fa-solid fa-right-from-bracket",
			Effect: b.logout,
		},
	}
}

// Activate runs an action entry: its side effect if it has one, otherwise
// navigation to its target.
func (b *MenuBuilder) Activate(ctx context.Context, entry domain.MenuEntry) error {
	if entry.Kind != domain.MenuEntryAction {
		return ErrNotActionable
	}
	switch {
	case entry.Effect != nil:
		entry.Effect(ctx)
	case entry.Target != "" && b.navigator != nil:
		b.navigator.Navigate(ctx, entry.Target)
	default:
		return ErrNotActionable
	}
	return nil
}
