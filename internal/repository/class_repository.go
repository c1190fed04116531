package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// ClassRepository handles class reads.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID retrieves a class by id.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var c model.Class
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, name FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.CourseID, &c.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByCourse retrieves classes of a course ordered by name.
func (r *ClassRepository) ListByCourse(ctx context.Context, courseID uuid.UUID, page, perPage int) ([]model.Class, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM classes WHERE course_id = $1`, courseID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, name FROM classes
		 WHERE course_id = $1
		 ORDER BY name
		 LIMIT $2 OFFSET $3`, courseID, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.CourseID, &c.Name); err != nil {
			return nil, 0, err
		}
		classes = append(classes, c)
	}
	return classes, total, rows.Err()
}
