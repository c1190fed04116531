// Package scoring evaluates quiz submissions under a configurable point
// scheme. It is a pure computation over the session's sampled questions;
// flashcard sessions are study-only and never reach it.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

var (
	// ErrUnknownQuestion reports an answer referencing a question outside
	// the sampled set. Policy is strict: the whole submission is rejected,
	// nothing is partially scored.
	ErrUnknownQuestion = errors.New("answer references a question outside the session")

	// ErrMalformedMode reports a mode that cannot award positive credit.
	ErrMalformedMode = errors.New("evaluation mode must award positive points for a correct answer")
)

// Score evaluates a submission against the sampled question set. Unanswered
// questions score as empty selections. Total may be negative under penalty
// modes; MaxPossible is N * correct points.
func Score(questions []model.Question, answers []model.Answer, mode model.EvaluationMode) (*model.ScoreResult, error) {
	if mode.CorrectAnswerPoints <= 0 {
		return nil, fmt.Errorf("%w: correct_answer_points = %v", ErrMalformedMode, mode.CorrectAnswerPoints)
	}

	byID := make(map[uuid.UUID]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	selections := make(map[uuid.UUID][]string, len(answers))
	for _, a := range answers {
		if _, ok := byID[a.QuestionID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, a.QuestionID)
		}
		selections[a.QuestionID] = append(selections[a.QuestionID], a.Selected...)
	}

	result := &model.ScoreResult{
		PerQuestion: make([]model.QuestionScore, 0, len(questions)),
	}
	for _, q := range questions {
		points := scoreQuestion(q, selections[q.ID], mode)
		result.PerQuestion = append(result.PerQuestion, model.QuestionScore{
			QuestionID: q.ID,
			Points:     points,
		})
		result.Total += points
	}
	result.MaxPossible = float64(len(questions)) * mode.CorrectAnswerPoints
	result.Percentage = displayPercentage(result.Total, result.MaxPossible)
	return result, nil
}

// scoreQuestion applies the per-question rules in order:
//
//  1. exact match                  -> correct points
//  2. any wrong selection          -> incorrect points (a single wrong pick
//     penalizes the whole question; partial credit never rescues it)
//  3. clean but incomplete         -> round2(correct * matched/|C|) when the
//     mode enables partial credit, incorrect points otherwise
//  4. no selection                 -> incorrect points
func scoreQuestion(q model.Question, selected []string, mode model.EvaluationMode) float64 {
	correct := answerSet(q.QuestionType, q.CorrectAnswers)
	user := answerSet(q.QuestionType, selected)

	matched, wrongSelected := 0, 0
	for v := range user {
		if _, ok := correct[v]; ok {
			matched++
		} else {
			wrongSelected++
		}
	}
	missed := len(correct) - matched

	switch {
	case wrongSelected == 0 && missed == 0:
		return mode.CorrectAnswerPoints
	case wrongSelected > 0:
		return mode.IncorrectAnswerPoints
	case matched > 0:
		if mode.PartialCreditEnabled {
			return round2(mode.CorrectAnswerPoints * float64(matched) / float64(len(correct)))
		}
		return mode.IncorrectAnswerPoints
	default:
		return mode.IncorrectAnswerPoints
	}
}

// answerSet collapses a selection into a set. Short answers compare trimmed
// and case-insensitive; option selections compare verbatim.
func answerSet(qt model.QuestionType, values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if qt == model.QuestionTypeShortAnswer {
			v = strings.ToLower(strings.TrimSpace(v))
		}
		set[v] = struct{}{}
	}
	return set
}

// round2 rounds to two decimal places, half away from zero. Applied uniformly
// wherever partial credit is computed.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// displayPercentage derives the display-only percentage, clamped to [0, 100].
func displayPercentage(total, maxPossible float64) float64 {
	if maxPossible <= 0 {
		return 0
	}
	pct := total / maxPossible * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return round2(pct)
}
