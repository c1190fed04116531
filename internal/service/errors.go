package service

import "errors"

// Expected, user-facing conditions. Callers surface a specific message and
// do not retry; none of these should escape the request boundary as a crash.
var (
	// ErrNotFound reports an absent principal, department, course, class,
	// section, question or evaluation mode.
	ErrNotFound = errors.New("resource not found")

	// ErrPermissionDenied reports content that exists but is not visible to
	// the resolved permissions.
	ErrPermissionDenied = errors.New("content is not visible to this principal")

	// ErrEmptyPool reports that the visible content has zero eligible
	// questions for the requested session kind.
	ErrEmptyPool = errors.New("no eligible questions for this session")

	// ErrNotScorable reports an attempt to score a flashcard session.
	ErrNotScorable = errors.New("flashcard sessions are study-only")

	// ErrInvalidScope reports a session request that does not name exactly
	// one of section and class.
	ErrInvalidScope = errors.New("exactly one of section_id and class_id must be set")
)
