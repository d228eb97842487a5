package vendas

import "fmt"

// Role is the viewer's role in the dashboard.
type Role string

const (
	RoleSeller     Role = "seller"
	RoleSupervisor Role = "supervisor"
)

// ParseRole validates a configured role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSeller, RoleSupervisor:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q (expected seller or supervisor)", s)
}

// Session identifies the signed-in user.
type Session struct {
	ID         string
	EmployeeID string
	Role       Role
	Name       string
}

// Permissions is the capability set of one viewer on one record, computed
// once per record instead of branching on the role string at every call
// site.
type Permissions struct {
	CanEdit            bool
	CanDelete          bool
	CanSaveObservation bool
}

// PermissionsFor derives the capability set from role and ownership.
// Editing and deleting require ownership regardless of role. Saving an
// observation is a seller capability and does not re-check ownership; the
// backend contract currently accepts such saves.
func PermissionsFor(session Session, sale *Sale) Permissions {
	owner := session.EmployeeID == sale.User.EmployeeID
	return Permissions{
		CanEdit:            owner,
		CanDelete:          owner,
		CanSaveObservation: session.Role == RoleSeller,
	}
}
