package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// DepartmentRepository handles department reads.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// GetByID retrieves a department by id.
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	var d model.Department
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, code FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Code)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List retrieves departments ordered by name, with total count for pagination.
func (r *DepartmentRepository) List(ctx context.Context, page, perPage int) ([]model.Department, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code FROM departments
		 ORDER BY name
		 LIMIT $1 OFFSET $2`, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code); err != nil {
			return nil, 0, err
		}
		departments = append(departments, d)
	}
	return departments, total, rows.Err()
}
