package model

// EvaluationMode is a configurable point scheme applied during scoring.
// Immutable per use; several modes coexist (Standard, With Penalty, ...).
type EvaluationMode struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	CorrectAnswerPoints   float64 `json:"correct_answer_points"`
	IncorrectAnswerPoints float64 `json:"incorrect_answer_points"`
	PartialCreditEnabled  bool    `json:"partial_credit_enabled"`
}
