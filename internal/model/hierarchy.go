package model

import "github.com/google/uuid"

// Department is the root of the content hierarchy.
type Department struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

// Course belongs to exactly one department.
type Course struct {
	ID           uuid.UUID `json:"id"`
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
}

// Class belongs to exactly one course.
type Class struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`
	Name     string    `json:"name"`
}

// Section is the leaf grouping that owns questions and is the unit of
// visibility control.
type Section struct {
	ID       uuid.UUID `json:"id"`
	ClassID  uuid.UUID `json:"class_id"`
	Name     string    `json:"name"`
	IsPublic bool      `json:"is_public"`
}
