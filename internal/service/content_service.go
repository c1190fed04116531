package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// ContentService serves hierarchy navigation with visibility filtering at
// the section level. Departments, courses and classes are browsable by
// anyone; sections are where access control bites.
type ContentService struct {
	departments DepartmentStore
	courses     CourseStore
	classes     ClassStore
	sections    SectionStore
}

// NewContentService creates a new ContentService.
func NewContentService(
	departments DepartmentStore,
	courses CourseStore,
	classes ClassStore,
	sections SectionStore,
) *ContentService {
	return &ContentService{
		departments: departments,
		courses:     courses,
		classes:     classes,
		sections:    sections,
	}
}

// ListDepartments returns a page of departments with the total count.
func (s *ContentService) ListDepartments(ctx context.Context, page, perPage int) ([]model.Department, int, error) {
	departments, total, err := s.departments.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, mapNoRows(err, "list departments")
	}
	return departments, total, nil
}

// ListCourses returns a page of courses for a department.
func (s *ContentService) ListCourses(ctx context.Context, departmentID uuid.UUID, page, perPage int) ([]model.Course, int, error) {
	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return nil, 0, mapNoRows(err, "get department")
	}
	courses, total, err := s.courses.ListByDepartment(ctx, departmentID, page, perPage)
	if err != nil {
		return nil, 0, mapNoRows(err, "list courses")
	}
	return courses, total, nil
}

// ListClasses returns a page of classes for a course.
func (s *ContentService) ListClasses(ctx context.Context, courseID uuid.UUID, page, perPage int) ([]model.Class, int, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, 0, mapNoRows(err, "get course")
	}
	classes, total, err := s.classes.ListByCourse(ctx, courseID, page, perPage)
	if err != nil {
		return nil, 0, mapNoRows(err, "list classes")
	}
	return classes, total, nil
}

// ListSections returns the sections of a class visible to the given
// permissions. The reserved exam-simulation section is excluded by
// construction, for every role.
func (s *ContentService) ListSections(ctx context.Context, classID uuid.UUID, perms access.Permissions) ([]model.Section, error) {
	scope, err := resolveScope(ctx, s.classes, s.courses, classID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByClass(ctx, classID)
	if err != nil {
		return nil, mapNoRows(err, "list sections")
	}

	filter := access.SectionFilter(scope, perms)
	visible := make([]model.Section, 0, len(sections))
	for _, sec := range sections {
		if filter(sec) {
			visible = append(visible, sec)
		}
	}
	return visible, nil
}

// GetSection fetches a single section, gated through the same predicate that
// backs listing so browse and session-start can never disagree.
func (s *ContentService) GetSection(ctx context.Context, sectionID uuid.UUID, perms access.Permissions) (*model.Section, error) {
	sec, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, mapNoRows(err, "get section")
	}

	scope, err := resolveScope(ctx, s.classes, s.courses, sec.ClassID)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSection(*sec, scope, perms) {
		return nil, ErrPermissionDenied
	}
	return sec, nil
}
