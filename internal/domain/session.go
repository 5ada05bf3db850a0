package domain

// RoleLabel is a display-only classification derived from token claims.
type RoleLabel string

const (
	RolePlatformAdmin RoleLabel = "PlatformAdmin"
	RoleStandardUser  RoleLabel = "StandardUser"
)

// SessionIdentity is what the toolbar shows about the signed-in user.
// The zero value is the anonymous identity used when no usable token exists.
type SessionIdentity struct {
	Username  string    `json:"username"`
	RoleLabel RoleLabel `json:"role_label"`
}

// IsAnonymous reports whether the identity carries no session data.
func (s SessionIdentity) IsAnonymous() bool {
	return s == SessionIdentity{}
}

// RoleFor maps the platform-admin claim to its label.
func RoleFor(isPlatformAdmin bool) RoleLabel {
	if isPlatformAdmin {
		return RolePlatformAdmin
	}
	return RoleStandardUser
}
