package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// SectionRepository handles section reads.
type SectionRepository struct {
	pool *pgxpool.Pool
}

// NewSectionRepository creates a new SectionRepository.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

// GetByID retrieves a section by id.
func (r *SectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Section, error) {
	var s model.Section
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_id, name, is_public FROM sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.ClassID, &s.Name, &s.IsPublic)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByClass retrieves all sections of a class. Ordered by id so that
// session samples composed from several sections are reproducible.
func (r *SectionRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Section, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_id, name, is_public FROM sections
		 WHERE class_id = $1
		 ORDER BY id`, classID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.ClassID, &s.Name, &s.IsPublic); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
