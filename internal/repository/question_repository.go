package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// QuestionRepository handles question reads.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListBySection retrieves all questions of a section. Ordered by id: the
// session generator re-derives samples from a seed, which only works if the
// underlying pool order is stable between calls.
func (r *QuestionRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, section_id, content, question_type, options, correct_answers, difficulty
		 FROM questions
		 WHERE section_id = $1
		 ORDER BY id`, sectionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.SectionID, &q.Content, &q.QuestionType, &q.Options, &q.CorrectAnswers, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
