package model

import "github.com/google/uuid"

// Role is the coarse permission tier of a principal.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleMaintainer Role = "MAINTAINER"
	RoleStudent    Role = "STUDENT"
	// RoleGuest is the absence of an authenticated principal.
	RoleGuest Role = "GUEST"
)

// Principal is an authenticated actor as recorded by the identity provider.
// Principal ids are opaque external identifiers and must not contain dashes,
// which are reserved by the session token grammar.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// GrantType enumerates the explicit access-grant kinds.
type GrantType string

const (
	GrantManagedDepartment GrantType = "MANAGED_DEPARTMENT"
	GrantMaintainedCourse  GrantType = "MAINTAINED_COURSE"
	GrantAccessibleSection GrantType = "ACCESSIBLE_SECTION"
)

// AccessGrant is an explicit override granting visibility into specific
// content, independent of hierarchy position.
type AccessGrant struct {
	PrincipalID string    `json:"principal_id"`
	GrantType   GrantType `json:"grant_type"`
	TargetID    uuid.UUID `json:"target_id"`
}
