package model

import "github.com/google/uuid"

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeTrueFalse      QuestionType = "TRUE_FALSE"
	QuestionTypeShortAnswer    QuestionType = "SHORT_ANSWER"
)

// Question represents a single question owned by exactly one section.
type Question struct {
	ID             uuid.UUID    `json:"id"`
	SectionID      uuid.UUID    `json:"section_id"`
	Content        string       `json:"content"`
	QuestionType   QuestionType `json:"question_type"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswers []string     `json:"correct_answers,omitempty"`
	Difficulty     string       `json:"difficulty"`
}

// QuestionView is a question without its correct answers, safe to send to
// clients taking a session.
type QuestionView struct {
	ID           uuid.UUID    `json:"id"`
	Content      string       `json:"content"`
	QuestionType QuestionType `json:"question_type"`
	Options      []string     `json:"options,omitempty"`
	Difficulty   string       `json:"difficulty"`
}

// View strips the correct answers from a question.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:           q.ID,
		Content:      q.Content,
		QuestionType: q.QuestionType,
		Options:      q.Options,
		Difficulty:   q.Difficulty,
	}
}
