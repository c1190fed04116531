package access

import (
	"github.com/google/uuid"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// Permissions is a resolved, read-only snapshot of a principal's role and
// explicit grants. It is built fresh per decision and threaded explicitly
// through the visibility filter, session generator and scoring paths;
// it is never cached across requests.
type Permissions struct {
	Role               model.Role
	ManagedDepartments map[uuid.UUID]struct{}
	MaintainedCourses  map[uuid.UUID]struct{}
	AccessibleSections map[uuid.UUID]struct{}
}

// NewPermissions returns an empty snapshot for the given role.
func NewPermissions(role model.Role) Permissions {
	return Permissions{
		Role:               role,
		ManagedDepartments: make(map[uuid.UUID]struct{}),
		MaintainedCourses:  make(map[uuid.UUID]struct{}),
		AccessibleSections: make(map[uuid.UUID]struct{}),
	}
}

// Guest is the constant snapshot used when no principal is authenticated.
// No resolver call is made for guests.
func Guest() Permissions {
	return NewPermissions(model.RoleGuest)
}

// WithGrants folds explicit grants into the snapshot and returns it.
func (p Permissions) WithGrants(grants []model.AccessGrant) Permissions {
	for _, g := range grants {
		switch g.GrantType {
		case model.GrantManagedDepartment:
			p.ManagedDepartments[g.TargetID] = struct{}{}
		case model.GrantMaintainedCourse:
			p.MaintainedCourses[g.TargetID] = struct{}{}
		case model.GrantAccessibleSection:
			p.AccessibleSections[g.TargetID] = struct{}{}
		}
	}
	return p
}

// ManagesDepartment reports whether the department is explicitly managed.
func (p Permissions) ManagesDepartment(id uuid.UUID) bool {
	_, ok := p.ManagedDepartments[id]
	return ok
}

// MaintainsCourse reports whether the course is explicitly maintained.
func (p Permissions) MaintainsCourse(id uuid.UUID) bool {
	_, ok := p.MaintainedCourses[id]
	return ok
}

// HasSectionGrant reports whether the section is explicitly accessible.
func (p Permissions) HasSectionGrant(id uuid.UUID) bool {
	_, ok := p.AccessibleSections[id]
	return ok
}
