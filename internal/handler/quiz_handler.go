package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/middleware"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/response"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/scoring"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/service"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/token"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/validator"
)

// QuizHandler serves session generation, token resolution and scoring.
type QuizHandler struct {
	quizService   *service.QuizService
	accessService *service.AccessService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, accessService *service.AccessService) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		accessService: accessService,
	}
}

// ListModes godoc
// GET /api/v1/quiz/modes
func (h *QuizHandler) ListModes(c *gin.Context) {
	modes, err := h.quizService.ListModes(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modes": modes})
}

// CreateSession godoc
// POST /api/v1/quiz/sessions
// Samples a question set for the authenticated principal and returns a
// resolvable token.
func (h *QuizHandler) CreateSession(c *gin.Context) {
	principalID := middleware.GetPrincipalID(c)
	if principalID == "" {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.StartSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	sess, err := h.quizService.Generate(c.Request.Context(), service.GenerateInput{
		SectionID:   req.SectionID,
		ClassID:     req.ClassID,
		Subject:     token.Subject(req.Subject),
		Count:       req.Count,
		ModeID:      req.ModeID,
		PrincipalID: principalID,
		Perms:       perms,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

// ResolveSession godoc
// GET /api/v1/quiz/sessions/:token
// Re-expands a resolvable token into the session it was created as.
func (h *QuizHandler) ResolveSession(c *gin.Context) {
	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	sess, err := h.quizService.Resolve(c.Request.Context(), c.Param("token"), middleware.GetPrincipalID(c), perms)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

// ScoreSession godoc
// POST /api/v1/quiz/sessions/:token/score
func (h *QuizHandler) ScoreSession(c *gin.Context) {
	var req model.ScoreSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	outcome, err := h.quizService.ScoreSession(c.Request.Context(), c.Param("token"), middleware.GetPrincipalID(c), perms, req.ModeID, req.Answers)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"result":         outcome.Result,
		"already_scored": outcome.AlreadyScored,
	})
}

// CreateGuestSession godoc
// POST /api/v1/quiz/guest
// Samples an ephemeral session. Works for authenticated callers too, using
// their visibility without issuing a resolvable token.
func (h *QuizHandler) CreateGuestSession(c *gin.Context) {
	var req model.GuestSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	sess, err := h.quizService.Generate(c.Request.Context(), service.GenerateInput{
		SectionID: req.SectionID,
		ClassID:   req.ClassID,
		Subject:   token.Subject(req.Subject),
		Count:     req.Count,
		Perms:     perms,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

// ScoreGuest godoc
// POST /api/v1/quiz/guest/score
func (h *QuizHandler) ScoreGuest(c *gin.Context) {
	var req model.GuestScoreRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	result, err := h.quizService.ScoreGuest(c.Request.Context(), service.GuestScoreInput{
		SectionID: req.SectionID,
		ClassID:   req.ClassID,
		ModeID:    req.ModeID,
		Answers:   req.Answers,
		Perms:     perms,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

func (h *QuizHandler) callerPermissions(c *gin.Context) (access.Permissions, bool) {
	perms, err := h.accessService.Resolve(c.Request.Context(), middleware.GetPrincipalID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		} else {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return access.Permissions{}, false
	}
	return perms, true
}

// failFromService maps domain errors onto the response envelope.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		response.Fail(c, http.StatusForbidden, response.ErrPermissionDenied)
	case errors.Is(err, service.ErrEmptyPool):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyPool)
	case errors.Is(err, service.ErrNotScorable):
		response.Fail(c, http.StatusBadRequest, response.ErrFlashcardNotScorable)
	case errors.Is(err, service.ErrInvalidScope):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	case errors.Is(err, token.ErrInvalidToken):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidSessionToken)
	case errors.Is(err, scoring.ErrUnknownQuestion):
		response.Fail(c, http.StatusBadRequest, response.ErrUnknownQuestion)
	case errors.Is(err, scoring.ErrMalformedMode):
		response.Fail(c, http.StatusBadRequest, response.ErrMalformedMode)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
