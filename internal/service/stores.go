package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// The content store and identity records are external collaborators. These
// interfaces name exactly the reads the services need, so main wires the
// pgx repositories and tests wire in-memory fakes.

// PrincipalStore reads principals and their explicit grants.
type PrincipalStore interface {
	GetByID(ctx context.Context, id string) (*model.Principal, error)
	ListGrants(ctx context.Context, principalID string) ([]model.AccessGrant, error)
}

// DepartmentStore reads departments.
type DepartmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Department, error)
	List(ctx context.Context, page, perPage int) ([]model.Department, int, error)
}

// CourseStore reads courses.
type CourseStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID, page, perPage int) ([]model.Course, int, error)
}

// ClassStore reads classes.
type ClassStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID, page, perPage int) ([]model.Class, int, error)
}

// SectionStore reads sections.
type SectionStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Section, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Section, error)
}

// QuestionStore reads questions.
type QuestionStore interface {
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Question, error)
}

// ModeStore reads evaluation modes.
type ModeStore interface {
	GetByID(ctx context.Context, id string) (*model.EvaluationMode, error)
	List(ctx context.Context) ([]model.EvaluationMode, error)
}

// resolveScope loads the ownership chain of a class so the visibility rules
// can see the owning course and department.
func resolveScope(ctx context.Context, classes ClassStore, courses CourseStore, classID uuid.UUID) (access.Scope, error) {
	cls, err := classes.GetByID(ctx, classID)
	if err != nil {
		return access.Scope{}, mapNoRows(err, "get class")
	}
	course, err := courses.GetByID(ctx, cls.CourseID)
	if err != nil {
		return access.Scope{}, mapNoRows(err, "get course")
	}
	return access.Scope{Class: *cls, Course: *course}, nil
}

// mapNoRows converts a pgx miss into the user-facing ErrNotFound and wraps
// anything else.
func mapNoRows(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
