// Package token implements the resolvable session-token wire format:
//
//	{kind}-{subject}-{principalIdOrGuest}-{seed}-{base64(scopeId:count)}
//
// The format is the published client contract, so decoding fails closed with
// ErrInvalidToken on any structural deviation instead of surfacing raw parse
// errors.
package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind distinguishes single-section sessions from class-wide exam simulation.
type Kind string

const (
	KindUser Kind = "user"
	KindExam Kind = "exam"
)

// Subject selects the question-type partition of a session.
type Subject string

const (
	SubjectFlashcard Subject = "flashcard"
	SubjectQuiz      Subject = "quiz"
)

// GuestPrincipal is the principal segment for unauthenticated resolvable
// tokens.
const GuestPrincipal = "guest"

const delimiter = "-"

// ErrInvalidToken reports a structurally malformed token. It is terminal:
// callers must not retry or attempt partial recovery.
var ErrInvalidToken = errors.New("invalid session token")

// Resolvable carries every field needed to reproduce a session sample.
type Resolvable struct {
	Kind        Kind
	Subject     Subject
	PrincipalID string
	Seed        int64
	ScopeID     string
	Count       int
}

// Encode serializes a resolvable token. The principal id must not contain
// the segment delimiter; an empty id encodes as the guest principal. Seeds
// are unix-millisecond timestamps, so a negative seed is rejected: its minus
// sign would collide with the delimiter.
func Encode(t Resolvable) (string, error) {
	if t.Kind != KindUser && t.Kind != KindExam {
		return "", fmt.Errorf("encode token: unknown kind %q", t.Kind)
	}
	if t.Subject != SubjectFlashcard && t.Subject != SubjectQuiz {
		return "", fmt.Errorf("encode token: unknown subject %q", t.Subject)
	}
	principal := t.PrincipalID
	if principal == "" {
		principal = GuestPrincipal
	}
	if strings.Contains(principal, delimiter) {
		return "", fmt.Errorf("encode token: principal id %q contains the delimiter", principal)
	}
	if t.Seed < 0 {
		return "", fmt.Errorf("encode token: negative seed %d", t.Seed)
	}
	if t.ScopeID == "" || t.Count <= 0 {
		return "", fmt.Errorf("encode token: missing scope or count")
	}

	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(t.ScopeID + ":" + strconv.Itoa(t.Count)),
	)
	return strings.Join([]string{
		string(t.Kind),
		string(t.Subject),
		principal,
		strconv.FormatInt(t.Seed, 10),
		payload,
	}, delimiter), nil
}

// Decode parses and validates a resolvable token. The base64 payload may
// itself contain the delimiter, so everything past the seed segment is
// rejoined before decoding.
func Decode(raw string) (Resolvable, error) {
	parts := strings.Split(raw, delimiter)
	if len(parts) < 5 {
		return Resolvable{}, ErrInvalidToken
	}

	kind := Kind(parts[0])
	if kind != KindUser && kind != KindExam {
		return Resolvable{}, ErrInvalidToken
	}
	subject := Subject(parts[1])
	if subject != SubjectFlashcard && subject != SubjectQuiz {
		return Resolvable{}, ErrInvalidToken
	}
	principal := parts[2]
	if principal == "" {
		return Resolvable{}, ErrInvalidToken
	}
	seed, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Resolvable{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.Join(parts[4:], delimiter))
	if err != nil {
		return Resolvable{}, ErrInvalidToken
	}
	fields := strings.Split(string(payload), ":")
	if len(fields) != 2 || fields[0] == "" {
		return Resolvable{}, ErrInvalidToken
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count <= 0 {
		return Resolvable{}, ErrInvalidToken
	}

	return Resolvable{
		Kind:        kind,
		Subject:     subject,
		PrincipalID: principal,
		Seed:        seed,
		ScopeID:     fields[0],
		Count:       count,
	}, nil
}

// GuestID builds the opaque identifier of an ephemeral session. Its
// parameters travel out-of-band; the id itself is never decoded.
func GuestID(subject Subject, at time.Time) string {
	return fmt.Sprintf("guest-%s-%d", subject, at.UnixMilli())
}
