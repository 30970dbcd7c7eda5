package roles

import "strings"

// Role is a normalized team role. The zero value is None, meaning "not a member".
type Role string

const (
	None   Role = ""
	Viewer Role = "viewer"
	Editor Role = "editor"
	Admin  Role = "admin"
	Owner  Role = "owner"
)

// legacyMember is the pre-editor name for Editor still found in stored rows.
const legacyMember = "member"

// Capabilities describes what a role may do inside its team
type Capabilities struct {
	CanInvite        bool `json:"canInvite"`
	CanManageMembers bool `json:"canManageMembers"`
	CanEdit          bool `json:"canEdit"`
	CanExportOnly    bool `json:"canExportOnly"`
}

// Normalize maps a stored or requested role token to a Role.
// Matching is case-insensitive; unknown and empty tokens yield None.
func Normalize(token string) Role {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "owner":
		return Owner
	case "admin":
		return Admin
	case "editor", legacyMember:
		return Editor
	case "viewer":
		return Viewer
	default:
		return None
	}
}

// IsValid reports whether r is one of the four member roles
func (r Role) IsValid() bool {
	switch r {
	case Owner, Admin, Editor, Viewer:
		return true
	}
	return false
}

// rank orders roles by capability; None ranks below every member role.
func (r Role) rank() int {
	switch r {
	case Owner:
		return 4
	case Admin:
		return 3
	case Editor:
		return 2
	case Viewer:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the capabilities of min.
// None never satisfies any minimum.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.rank() >= min.rank()
}

// IsManager reports whether r may manage members, requests and invites
func (r Role) IsManager() bool {
	return r.AtLeast(Admin)
}

func (r Role) String() string {
	if r == None {
		return "none"
	}
	return string(r)
}

// CapabilitiesFor returns the capability set of r. It is total: None yields no capabilities.
func CapabilitiesFor(r Role) Capabilities {
	if !r.IsValid() {
		return Capabilities{}
	}
	return Capabilities{
		CanInvite:        r.IsManager(),
		CanManageMembers: r.IsManager(),
		CanEdit:          r != Viewer,
		CanExportOnly:    r == Viewer,
	}
}
