package model

import "github.com/google/uuid"

// StartSessionRequest is the payload for creating a resolvable session.
// Exactly one of section_id and class_id must be set; class_id selects the
// exam-simulation flow pooling every visible section of the class.
type StartSessionRequest struct {
	SectionID *uuid.UUID `json:"section_id" binding:"omitempty"`
	ClassID   *uuid.UUID `json:"class_id" binding:"omitempty"`
	Subject   string     `json:"subject" binding:"required,oneof=quiz flashcard"`
	Count     int        `json:"count" binding:"required,min=1,max=100"`
	ModeID    string     `json:"mode_id" binding:"omitempty,max=64"`
}

// GuestSessionRequest is the payload for the unauthenticated ephemeral flow.
type GuestSessionRequest struct {
	SectionID *uuid.UUID `json:"section_id" binding:"omitempty"`
	ClassID   *uuid.UUID `json:"class_id" binding:"omitempty"`
	Subject   string     `json:"subject" binding:"required,oneof=quiz flashcard"`
	Count     int        `json:"count" binding:"required,min=1,max=100"`
}

// ScoreSessionRequest is the payload for scoring a resolvable quiz session.
type ScoreSessionRequest struct {
	ModeID  string   `json:"mode_id" binding:"required,max=64"`
	Answers []Answer `json:"answers" binding:"required,dive"`
}

// GuestScoreRequest scores an ephemeral session. The sampled set is held
// client-side, so the scope is supplied out-of-band and answers are checked
// against the visible question pool instead.
type GuestScoreRequest struct {
	SectionID *uuid.UUID `json:"section_id" binding:"omitempty"`
	ClassID   *uuid.UUID `json:"class_id" binding:"omitempty"`
	ModeID    string     `json:"mode_id" binding:"required,max=64"`
	Answers   []Answer   `json:"answers" binding:"required,dive"`
}
