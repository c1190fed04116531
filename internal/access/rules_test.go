package access

import (
	"testing"

	"github.com/google/uuid"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

func testScope() (Scope, model.Department) {
	dept := model.Department{ID: uuid.New(), Name: "Engineering", Code: "ENG"}
	course := model.Course{ID: uuid.New(), DepartmentID: dept.ID, Name: "Databases"}
	class := model.Class{ID: uuid.New(), CourseID: course.ID, Name: "2025/26"}
	return Scope{Class: class, Course: course}, dept
}

func testSections(classID uuid.UUID) []model.Section {
	return []model.Section{
		{ID: uuid.New(), ClassID: classID, Name: "SQL Basics", IsPublic: true},
		{ID: uuid.New(), ClassID: classID, Name: "Normalization", IsPublic: false},
		{ID: uuid.New(), ClassID: classID, Name: "Transactions", IsPublic: false},
		{ID: uuid.New(), ClassID: classID, Name: ReservedSectionName, IsPublic: true},
	}
}

func visible(filter func(model.Section) bool, sections []model.Section) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool)
	for _, s := range sections {
		if filter(s) {
			out[s.ID] = true
		}
	}
	return out
}

func TestSectionFilterByRole(t *testing.T) {
	scope, dept := testScope()
	sections := testSections(scope.Class.ID)
	granted := sections[1]

	adminManaging := NewPermissions(model.RoleAdmin)
	adminManaging.ManagedDepartments[dept.ID] = struct{}{}

	adminElsewhere := NewPermissions(model.RoleAdmin)
	adminElsewhere.ManagedDepartments[uuid.New()] = struct{}{}

	studentWithGrant := NewPermissions(model.RoleStudent)
	studentWithGrant.AccessibleSections[granted.ID] = struct{}{}

	maintainer := NewPermissions(model.RoleMaintainer)
	maintainer.MaintainedCourses[scope.Course.ID] = struct{}{}

	tests := []struct {
		name  string
		perms Permissions
		want  []bool // aligned with testSections order
	}{
		{"superadmin sees all but reserved", NewPermissions(model.RoleSuperAdmin), []bool{true, true, true, false}},
		{"admin managing department sees all but reserved", adminManaging, []bool{true, true, true, false}},
		{"admin of another department falls back to default", adminElsewhere, []bool{true, false, false, false}},
		{"maintainer of the course sees all but reserved", maintainer, []bool{true, true, true, false}},
		{"student grant adds one private section", studentWithGrant, []bool{true, true, false, false}},
		{"guest sees public only", Guest(), []bool{true, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := SectionFilter(scope, tt.perms)
			for i, sec := range sections {
				if got := filter(sec); got != tt.want[i] {
					t.Errorf("section %q: visible = %v, want %v", sec.Name, got, tt.want[i])
				}
			}
		})
	}
}

func TestVisibilityMonotonicity(t *testing.T) {
	scope, dept := testScope()
	sections := testSections(scope.Class.ID)

	admin := NewPermissions(model.RoleAdmin)
	admin.ManagedDepartments[dept.ID] = struct{}{}

	super := visible(SectionFilter(scope, NewPermissions(model.RoleSuperAdmin)), sections)
	managing := visible(SectionFilter(scope, admin), sections)
	def := visible(SectionFilter(scope, NewPermissions(model.RoleStudent)), sections)

	for id := range managing {
		if !super[id] {
			t.Errorf("admin sees section %s that superadmin does not", id)
		}
	}
	for id := range def {
		if !managing[id] {
			t.Errorf("default tier sees section %s that a managing admin does not", id)
		}
	}
}

func TestCanAccessSectionMatchesFilterPointwise(t *testing.T) {
	scope, dept := testScope()
	sections := testSections(scope.Class.ID)

	perms := []Permissions{
		NewPermissions(model.RoleSuperAdmin),
		NewPermissions(model.RoleAdmin),
		NewPermissions(model.RoleStudent),
		Guest(),
	}
	perms[1].ManagedDepartments[dept.ID] = struct{}{}
	perms[2].AccessibleSections[sections[2].ID] = struct{}{}

	for _, p := range perms {
		filter := SectionFilter(scope, p)
		for _, sec := range sections {
			if CanAccessSection(sec, scope, p) != filter(sec) {
				t.Errorf("role %s: CanAccessSection diverges from filter on %q", p.Role, sec.Name)
			}
		}
	}
}

func TestSectionFilterRejectsForeignClass(t *testing.T) {
	scope, _ := testScope()
	foreign := model.Section{ID: uuid.New(), ClassID: uuid.New(), Name: "Other", IsPublic: true}

	if SectionFilter(scope, NewPermissions(model.RoleSuperAdmin))(foreign) {
		t.Error("section of another class must never be visible through this scope")
	}
}

func TestCourseDecision(t *testing.T) {
	dept := uuid.New()
	course := model.Course{ID: uuid.New(), DepartmentID: dept, Name: "Algorithms"}

	maintainer := NewPermissions(model.RoleMaintainer)
	maintainer.MaintainedCourses[course.ID] = struct{}{}

	adminManaging := NewPermissions(model.RoleAdmin)
	adminManaging.ManagedDepartments[dept] = struct{}{}

	tests := []struct {
		name  string
		perms Permissions
		want  Decision
	}{
		{"superadmin", NewPermissions(model.RoleSuperAdmin), DecisionAll},
		{"admin managing the department", adminManaging, DecisionAll},
		{"admin without the department", NewPermissions(model.RoleAdmin), DecisionDefault},
		{"maintainer of the course", maintainer, DecisionAll},
		{"maintainer of another course", NewPermissions(model.RoleMaintainer), DecisionDefault},
		{"student", NewPermissions(model.RoleStudent), DecisionDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseDecision(course, tt.perms); got != tt.want {
				t.Errorf("CourseDecision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithGrants(t *testing.T) {
	deptID, courseID, sectionID := uuid.New(), uuid.New(), uuid.New()

	p := NewPermissions(model.RoleAdmin).WithGrants([]model.AccessGrant{
		{GrantType: model.GrantManagedDepartment, TargetID: deptID},
		{GrantType: model.GrantMaintainedCourse, TargetID: courseID},
		{GrantType: model.GrantAccessibleSection, TargetID: sectionID},
	})

	if !p.ManagesDepartment(deptID) || !p.MaintainsCourse(courseID) || !p.HasSectionGrant(sectionID) {
		t.Error("grants were not folded into the snapshot")
	}
	if p.ManagesDepartment(courseID) {
		t.Error("grant targets must not leak across grant types")
	}
}
