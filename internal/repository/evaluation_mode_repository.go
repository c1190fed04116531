package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// EvaluationModeRepository handles evaluation-mode reads.
type EvaluationModeRepository struct {
	pool *pgxpool.Pool
}

// NewEvaluationModeRepository creates a new EvaluationModeRepository.
func NewEvaluationModeRepository(pool *pgxpool.Pool) *EvaluationModeRepository {
	return &EvaluationModeRepository{pool: pool}
}

// GetByID retrieves an evaluation mode by id.
func (r *EvaluationModeRepository) GetByID(ctx context.Context, id string) (*model.EvaluationMode, error) {
	var m model.EvaluationMode
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, correct_answer_points, incorrect_answer_points, partial_credit_enabled
		 FROM evaluation_modes WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.CorrectAnswerPoints, &m.IncorrectAnswerPoints, &m.PartialCreditEnabled)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves all configured evaluation modes ordered by name.
func (r *EvaluationModeRepository) List(ctx context.Context) ([]model.EvaluationMode, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, correct_answer_points, incorrect_answer_points, partial_credit_enabled
		 FROM evaluation_modes ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modes []model.EvaluationMode
	for rows.Next() {
		var m model.EvaluationMode
		if err := rows.Scan(&m.ID, &m.Name, &m.CorrectAnswerPoints, &m.IncorrectAnswerPoints, &m.PartialCreditEnabled); err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, rows.Err()
}
