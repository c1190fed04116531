package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// CourseRepository handles course reads.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a course by id.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var c model.Course
	err := r.pool.QueryRow(ctx,
		`SELECT id, department_id, name FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.DepartmentID, &c.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByDepartment retrieves courses of a department ordered by name.
func (r *CourseRepository) ListByDepartment(ctx context.Context, departmentID uuid.UUID, page, perPage int) ([]model.Course, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE department_id = $1`, departmentID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, department_id, name FROM courses
		 WHERE department_id = $1
		 ORDER BY name
		 LIMIT $2 OFFSET $3`, departmentID, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.DepartmentID, &c.Name); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}
