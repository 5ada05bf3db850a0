package domain

import "context"

// MenuEntryKind tags the MenuEntry variant.
type MenuEntryKind string

const (
	MenuEntryIdentity MenuEntryKind = "identity"
	MenuEntryDivider  MenuEntryKind = "divider"
	MenuEntryAction   MenuEntryKind = "action"
)

// Logical navigation targets.
const (
	PathLoginSettings = "/user/profile/login_settings"
	PathMyClusters    = "/user/profile/my_clusters"
	PathLogin         = "/login"
)

// MenuEntry is one row of the session dropdown. Exactly one of the
// variant-specific fields is meaningful, selected by Kind.
type MenuEntry struct {
	Key  string        `json:"key"`
	Kind MenuEntryKind `json:"type"`

	// Identity
	Identity *SessionIdentity `json:"identity,omitempty"`

	// Action
	Label  string `json:"label,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Target string `json:"target,omitempty"`
	// Effect runs instead of navigation when set.
	Effect func(ctx context.Context) `json:"-"`
}

// FindAction returns the action entry with the given key.
func FindAction(entries []MenuEntry, key string) (MenuEntry, bool) {
	for _, entry := range entries {
		if entry.Kind == MenuEntryAction && entry.Key == key {
			return entry, true
		}
	}
	return MenuEntry{}, false
}
