package model

import "github.com/google/uuid"

// Answer is a principal's submission for one question. Selected is treated
// as a set: order is irrelevant and duplicates collapse.
type Answer struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Selected   []string  `json:"selected"`
}

// QuestionScore is the awarded points for a single question.
type QuestionScore struct {
	QuestionID uuid.UUID `json:"question_id"`
	Points     float64   `json:"points"`
}

// ScoreResult aggregates per-question points. Total is the authoritative
// score and may be negative under penalty modes; Percentage is clamped to
// [0, 100] for display only.
type ScoreResult struct {
	PerQuestion []QuestionScore `json:"per_question"`
	Total       float64         `json:"total"`
	MaxPossible float64         `json:"max_possible"`
	Percentage  float64         `json:"percentage"`
}
