package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/config"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/sampling"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/scoring"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/token"
)

// QuizService generates sessions, re-resolves session tokens and scores
// submissions. Sessions are never persisted: resolvable tokens carry enough
// to reproduce the sample, ephemeral sessions live client-side.
type QuizService struct {
	classes   ClassStore
	courses   CourseStore
	sections  SectionStore
	questions QuestionStore
	modes     ModeStore
	// rdb is optional; when nil, pool caching and scored markers are
	// skipped (tests run without Redis).
	rdb       *redis.Client
	poolTTL   time.Duration
	markerTTL time.Duration
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	classes ClassStore,
	courses CourseStore,
	sections SectionStore,
	questions QuestionStore,
	modes ModeStore,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		classes:   classes,
		courses:   courses,
		sections:  sections,
		questions: questions,
		modes:     modes,
		rdb:       rdb,
		poolTTL:   cfg.PoolCacheTTL,
		markerTTL: cfg.ScoredMarkerTTL,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

// GenerateInput describes a session request. Exactly one of SectionID and
// ClassID must be set; ClassID selects exam simulation across every visible
// section of the class. An empty PrincipalID produces an ephemeral session.
type GenerateInput struct {
	SectionID   *uuid.UUID
	ClassID     *uuid.UUID
	Subject     token.Subject
	Count       int
	ModeID      string
	PrincipalID string
	Perms       access.Permissions
}

// Session is an immutable sampled question set bound to a scope.
type Session struct {
	Token     string                `json:"token"`
	Ephemeral bool                  `json:"ephemeral"`
	Kind      token.Kind            `json:"kind,omitempty"`
	Subject   token.Subject         `json:"subject"`
	ScopeID   uuid.UUID             `json:"scope_id"`
	Count     int                   `json:"count"`
	CreatedAt time.Time             `json:"created_at"`
	Mode      *model.EvaluationMode `json:"mode,omitempty"`
	Questions []model.QuestionView  `json:"questions"`
}

// ScoreOutcome carries a score plus the idempotency signal. Scoring is a
// pure recomputation and always safe to repeat; AlreadyScored lets callers
// enforce single-credit semantics on their side.
type ScoreOutcome struct {
	Result        *model.ScoreResult `json:"result"`
	AlreadyScored bool               `json:"already_scored"`
}

// GuestScoreInput scores an ephemeral session whose sampled set lives
// client-side; answers are validated against the visible question pool of
// the out-of-band scope instead.
type GuestScoreInput struct {
	SectionID *uuid.UUID
	ClassID   *uuid.UUID
	ModeID    string
	Answers   []model.Answer
	Perms     access.Permissions
}

// Generate builds a session over the accessible question pool of the scope.
func (s *QuizService) Generate(ctx context.Context, in GenerateInput) (*Session, error) {
	scopeID, pool, err := s.eligiblePool(ctx, in.SectionID, in.ClassID, in.Subject, in.Perms)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	var mode *model.EvaluationMode
	if in.Subject == token.SubjectQuiz && in.ModeID != "" {
		m, err := s.modes.GetByID(ctx, in.ModeID)
		if err != nil {
			return nil, mapNoRows(err, "get evaluation mode")
		}
		mode = m
	}

	now := time.Now()
	seed := now.UnixMilli()
	indices := sampling.Indices(sampling.NewSource(seed), len(pool), in.Count)

	views := make([]model.QuestionView, 0, len(indices))
	for _, i := range indices {
		views = append(views, pool[i].View())
	}

	sess := &Session{
		Subject:   in.Subject,
		ScopeID:   scopeID,
		Count:     len(indices),
		CreatedAt: now,
		Mode:      mode,
		Questions: views,
	}

	if in.PrincipalID == "" {
		sess.Ephemeral = true
		sess.Token = token.GuestID(in.Subject, now)
		return sess, nil
	}

	kind := token.KindUser
	if in.ClassID != nil {
		kind = token.KindExam
	}
	raw, err := token.Encode(token.Resolvable{
		Kind:        kind,
		Subject:     in.Subject,
		PrincipalID: in.PrincipalID,
		Seed:        seed,
		ScopeID:     scopeID.String(),
		Count:       in.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("encode session token: %w", err)
	}
	sess.Kind = kind
	sess.Token = raw
	return sess, nil
}

// Resolve re-expands a resolvable token into the identical session it was
// created as. Visibility is re-checked against the caller's current
// permissions; a revoked grant invalidates old sessions naturally.
func (s *QuizService) Resolve(ctx context.Context, raw, principalID string, perms access.Permissions) (*Session, error) {
	tok, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}
	if !principalMatches(tok.PrincipalID, principalID) {
		return nil, ErrPermissionDenied
	}

	sess, _, err := s.rebuild(ctx, tok, perms)
	if err != nil {
		return nil, err
	}
	sess.Token = raw
	return sess, nil
}

// ScoreSession re-validates and scores a quiz submission for a resolvable
// session. Answers referencing questions outside the sampled set reject the
// whole submission.
func (s *QuizService) ScoreSession(ctx context.Context, raw, principalID string, perms access.Permissions, modeID string, answers []model.Answer) (*ScoreOutcome, error) {
	tok, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}
	if tok.Subject != token.SubjectQuiz {
		return nil, ErrNotScorable
	}
	if !principalMatches(tok.PrincipalID, principalID) {
		return nil, ErrPermissionDenied
	}

	// Re-validated against current permissions so a principal cannot bank
	// points on content that is no longer (or never was) visible to them.
	_, sampled, err := s.rebuild(ctx, tok, perms)
	if err != nil {
		return nil, err
	}

	mode, err := s.modes.GetByID(ctx, modeID)
	if err != nil {
		return nil, mapNoRows(err, "get evaluation mode")
	}

	result, err := scoring.Score(sampled, answers, *mode)
	if err != nil {
		return nil, err
	}

	out := &ScoreOutcome{Result: result}
	if s.rdb != nil {
		key := config.CacheKey.ScoredMarkerKey(raw)
		set, err := s.rdb.SetNX(ctx, key, time.Now().Unix(), s.markerTTL).Result()
		if err != nil {
			s.log.Warn().Err(err).Msg("scored marker write failed")
		} else {
			out.AlreadyScored = !set
		}
	}
	return out, nil
}

// ScoreGuest scores an ephemeral quiz submission. Only answered questions
// enter the evaluation: the ephemeral sample is held by the client, so the
// pool is the validation boundary rather than the sample.
func (s *QuizService) ScoreGuest(ctx context.Context, in GuestScoreInput) (*model.ScoreResult, error) {
	_, pool, err := s.eligiblePool(ctx, in.SectionID, in.ClassID, token.SubjectQuiz, in.Perms)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	byID := make(map[uuid.UUID]model.Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}
	answered := make([]model.Question, 0, len(in.Answers))
	seen := make(map[uuid.UUID]struct{}, len(in.Answers))
	for _, a := range in.Answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", scoring.ErrUnknownQuestion, a.QuestionID)
		}
		if _, dup := seen[a.QuestionID]; dup {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		answered = append(answered, q)
	}

	mode, err := s.modes.GetByID(ctx, in.ModeID)
	if err != nil {
		return nil, mapNoRows(err, "get evaluation mode")
	}
	return scoring.Score(answered, in.Answers, *mode)
}

// ListModes returns all configured evaluation modes.
func (s *QuizService) ListModes(ctx context.Context) ([]model.EvaluationMode, error) {
	modes, err := s.modes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evaluation modes: %w", err)
	}
	return modes, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

// rebuild reproduces the session of a resolvable token: same pool, same
// seed, same sample. Returns the session and the sampled questions with
// their correct answers for scoring.
func (s *QuizService) rebuild(ctx context.Context, tok token.Resolvable, perms access.Permissions) (*Session, []model.Question, error) {
	scopeUUID, err := uuid.Parse(tok.ScopeID)
	if err != nil {
		return nil, nil, token.ErrInvalidToken
	}

	var sectionID, classID *uuid.UUID
	if tok.Kind == token.KindExam {
		classID = &scopeUUID
	} else {
		sectionID = &scopeUUID
	}

	scopeID, pool, err := s.eligiblePool(ctx, sectionID, classID, tok.Subject, perms)
	if err != nil {
		return nil, nil, err
	}
	if len(pool) == 0 {
		return nil, nil, ErrEmptyPool
	}

	indices := sampling.Indices(sampling.NewSource(tok.Seed), len(pool), tok.Count)
	sampled := make([]model.Question, 0, len(indices))
	views := make([]model.QuestionView, 0, len(indices))
	for _, i := range indices {
		sampled = append(sampled, pool[i])
		views = append(views, pool[i].View())
	}

	sess := &Session{
		Kind:      tok.Kind,
		Subject:   tok.Subject,
		ScopeID:   scopeID,
		Count:     len(indices),
		CreatedAt: time.UnixMilli(tok.Seed),
		Questions: views,
	}
	return sess, sampled, nil
}

// eligiblePool resolves the scope, applies visibility and the type
// partition, and returns the ordered question pool.
func (s *QuizService) eligiblePool(ctx context.Context, sectionID, classID *uuid.UUID, subject token.Subject, perms access.Permissions) (uuid.UUID, []model.Question, error) {
	switch {
	case sectionID != nil && classID == nil:
		sec, err := s.sections.GetByID(ctx, *sectionID)
		if err != nil {
			return uuid.Nil, nil, mapNoRows(err, "get section")
		}
		scope, err := resolveScope(ctx, s.classes, s.courses, sec.ClassID)
		if err != nil {
			return uuid.Nil, nil, err
		}
		if !access.CanAccessSection(*sec, scope, perms) {
			return uuid.Nil, nil, ErrPermissionDenied
		}
		pool, err := s.sectionPool(ctx, *sec, subject)
		if err != nil {
			return uuid.Nil, nil, err
		}
		return sec.ID, pool, nil

	case classID != nil && sectionID == nil:
		scope, err := resolveScope(ctx, s.classes, s.courses, *classID)
		if err != nil {
			return uuid.Nil, nil, err
		}
		sections, err := s.sections.ListByClass(ctx, *classID)
		if err != nil {
			return uuid.Nil, nil, mapNoRows(err, "list sections")
		}

		filter := access.SectionFilter(scope, perms)
		var pool []model.Question
		anyVisible := false
		for _, sec := range sections {
			if !filter(sec) {
				continue
			}
			anyVisible = true
			qs, err := s.sectionPool(ctx, sec, subject)
			if err != nil {
				return uuid.Nil, nil, err
			}
			pool = append(pool, qs...)
		}
		if !anyVisible {
			return uuid.Nil, nil, ErrPermissionDenied
		}
		return scope.Class.ID, pool, nil

	default:
		return uuid.Nil, nil, ErrInvalidScope
	}
}

// sectionPool returns a section's questions of the eligible types, through
// the Redis read-through cache when available. Pools are cached per section
// and subject, never per principal: the permission decision happens before
// the pool is touched.
func (s *QuizService) sectionPool(ctx context.Context, sec model.Section, subject token.Subject) ([]model.Question, error) {
	key := config.CacheKey.SectionPoolKey(sec.ID.String(), string(subject))

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var cached []model.Question
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
			// Corrupt cache entry: fall through to the store.
		case !errors.Is(err, redis.Nil):
			s.log.Warn().Err(err).Str("key", key).Msg("pool cache read failed")
		}
	}

	questions, err := s.questions.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	pool := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if eligibleType(q.QuestionType, subject) {
			pool = append(pool, q)
		}
	}

	if s.rdb != nil {
		raw, _ := json.Marshal(pool)
		if err := s.rdb.Set(ctx, key, raw, s.poolTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("pool cache write failed")
		}
	}
	return pool, nil
}

// eligibleType applies the product's type partition: flashcards draw only
// short-answer questions, quizzes draw multiple-choice and true/false.
// Short answers are excluded from quiz sampling by product decision, not by
// permission.
func eligibleType(qt model.QuestionType, subject token.Subject) bool {
	if subject == token.SubjectFlashcard {
		return qt == model.QuestionTypeShortAnswer
	}
	return qt == model.QuestionTypeMultipleChoice || qt == model.QuestionTypeTrueFalse
}

// principalMatches ties a resolvable token to its owner. Guests may only
// touch guest tokens.
func principalMatches(tokenPrincipal, caller string) bool {
	if caller == "" {
		return tokenPrincipal == token.GuestPrincipal
	}
	return tokenPrincipal == caller
}
