package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Access & content ──────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"

	// ─── Session & scoring ─────────────────────────────────────────────
	ErrEmptyPool            ErrCode = "EMPTY_POOL"
	ErrInvalidSessionToken  ErrCode = "INVALID_TOKEN"
	ErrUnknownQuestion      ErrCode = "UNKNOWN_QUESTION"
	ErrMalformedMode        ErrCode = "MALFORMED_MODE"
	ErrFlashcardNotScorable ErrCode = "FLASHCARD_NOT_SCORABLE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid id format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Access & content ──────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrPermissionDenied:
		return "You are not allowed to access this content."

	// ─── Session & scoring ─────────────────────────────────────────────
	case ErrEmptyPool:
		return "No eligible questions are available for this session."
	case ErrInvalidSessionToken:
		return "The session token is malformed or expired."
	case ErrUnknownQuestion:
		return "The submission references a question outside this session."
	case ErrMalformedMode:
		return "The evaluation mode configuration is invalid."
	case ErrFlashcardNotScorable:
		return "Flashcard sessions are study-only and cannot be scored."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
