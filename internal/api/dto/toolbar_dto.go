package dto

import "github.com/spec-kit/session-toolbar/internal/domain"

// StoreTokenRequest hands a freshly issued token to the client's storage.
type StoreTokenRequest struct {
	Token string `json:"token"`
}

// SelectLocaleRequest picks a display language.
type SelectLocaleRequest struct {
	Code string `json:"code"`
}

// MenuEntry is the wire form of a dropdown row.
type MenuEntry struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Username  string `json:"username,omitempty"`
	RoleLabel string `json:"role_label,omitempty"`
	Label     string `json:"label,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Target    string `json:"target,omitempty"`
}

// ToolbarResponse describes everything the client needs to draw the toolbar.
type ToolbarResponse struct {
	Identity domain.SessionIdentity `json:"identity"`
	Menu     []MenuEntry            `json:"menu"`
	Locales  []domain.LocaleOption  `json:"locales"`
	Language string                 `json:"language,omitempty"`
}

// NavigationResponse tells the client where to go after an action.
type NavigationResponse struct {
	Navigate string `json:"navigate,omitempty"`
}

// LocaleResponse reports the active language after a switch.
type LocaleResponse struct {
	Language string `json:"language,omitempty"`
}

// FromMenu converts domain entries to their wire form.
func FromMenu(entries []domain.MenuEntry) []MenuEntry {
	out := make([]MenuEntry, 0, len(entries))
	for _, e := range entries {
		item := MenuEntry{
			Key:    e.Key,
			Type:   string(e.Kind),
			Label:  e.Label,
			Icon:   e.Icon,
			Target: e.Target,
		}
		if e.Identity != nil {
			item.Username = e.Identity.Username
			item.RoleLabel = string(e.Identity.RoleLabel)
		}
		out = append(out, item)
	}
	return out
}
