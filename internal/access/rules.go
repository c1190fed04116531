package access

import (
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// ReservedSectionName marks the synthetic exam-simulation section. It never
// appears in ordinary listings or pools: exclusion is by construction, not a
// permission decision.
const ReservedSectionName = "Exam Simulation"

// Scope is the resolved ownership chain of a class, giving the rules access
// to the owning course and department without further lookups.
type Scope struct {
	Class  model.Class
	Course model.Course
}

// Decision is the widening tier produced by the policy rules.
type Decision int

const (
	// DecisionDefault limits visibility to public sections and explicit
	// section grants.
	DecisionDefault Decision = iota
	// DecisionAll widens visibility to every non-reserved section.
	DecisionAll
)

// ClassRule is one pure policy rule over a class scope. Rules are evaluated
// in priority order and the first match wins; the default tier applies when
// none match. Keeping them as a list makes each tier testable in isolation
// and new roles a one-line addition.
type ClassRule struct {
	Name     string
	Evaluate func(s Scope, p Permissions) (Decision, bool)
}

var classRules = []ClassRule{
	{
		Name: "superadmin",
		Evaluate: func(_ Scope, p Permissions) (Decision, bool) {
			if p.Role == model.RoleSuperAdmin {
				return DecisionAll, true
			}
			return DecisionDefault, false
		},
	},
	{
		Name: "admin-managed-department",
		Evaluate: func(s Scope, p Permissions) (Decision, bool) {
			if p.Role == model.RoleAdmin && p.ManagesDepartment(s.Course.DepartmentID) {
				return DecisionAll, true
			}
			return DecisionDefault, false
		},
	},
	{
		Name: "maintainer-maintained-course",
		Evaluate: func(s Scope, p Permissions) (Decision, bool) {
			if p.Role == model.RoleMaintainer && p.MaintainsCourse(s.Class.CourseID) {
				return DecisionAll, true
			}
			return DecisionDefault, false
		},
	},
}

// ClassDecision evaluates the ordered rule list for a class scope.
func ClassDecision(s Scope, p Permissions) Decision {
	for _, r := range classRules {
		if d, ok := r.Evaluate(s, p); ok {
			return d
		}
	}
	return DecisionDefault
}

// CourseDecision is the symmetric rule at course granularity: maintained
// courses substitute for managed departments, and ADMIN widens only when the
// course's department is actually managed.
func CourseDecision(course model.Course, p Permissions) Decision {
	switch {
	case p.Role == model.RoleSuperAdmin:
		return DecisionAll
	case p.Role == model.RoleAdmin && p.ManagesDepartment(course.DepartmentID):
		return DecisionAll
	case p.Role == model.RoleMaintainer && p.MaintainsCourse(course.ID):
		return DecisionAll
	}
	return DecisionDefault
}

// SectionFilter returns the visibility predicate for sections of the class.
// The same predicate backs both listing and single-section checks so that
// "browse" and "start session" can never disagree.
func SectionFilter(s Scope, p Permissions) func(model.Section) bool {
	decision := ClassDecision(s, p)
	return func(sec model.Section) bool {
		if sec.ClassID != s.Class.ID {
			return false
		}
		if sec.Name == ReservedSectionName {
			return false
		}
		if decision == DecisionAll {
			return true
		}
		return sec.IsPublic || p.HasSectionGrant(sec.ID)
	}
}

// CanAccessSection gates single-section access by applying the listing
// predicate pointwise.
func CanAccessSection(sec model.Section, s Scope, p Permissions) bool {
	return SectionFilter(s, p)(sec)
}
