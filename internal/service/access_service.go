package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
)

// AccessService resolves a principal id into a permissions snapshot.
type AccessService struct {
	principals PrincipalStore
	log        zerolog.Logger
}

// NewAccessService creates a new AccessService.
func NewAccessService(principals PrincipalStore, log zerolog.Logger) *AccessService {
	return &AccessService{
		principals: principals,
		log:        log.With().Str("component", "access_service").Logger(),
	}
}

// Resolve builds a fresh Permissions snapshot for the principal. An empty id
// means no authenticated principal: resolution is skipped entirely and the
// constant guest snapshot is returned. The snapshot is rebuilt on every call;
// grant changes take effect on the next request without any invalidation.
func (s *AccessService) Resolve(ctx context.Context, principalID string) (access.Permissions, error) {
	if principalID == "" {
		return access.Guest(), nil
	}

	principal, err := s.principals.GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Permissions{}, ErrNotFound
		}
		return access.Permissions{}, fmt.Errorf("get principal: %w", err)
	}

	grants, err := s.principals.ListGrants(ctx, principalID)
	if err != nil {
		return access.Permissions{}, fmt.Errorf("list grants: %w", err)
	}

	return access.NewPermissions(principal.Role).WithGrants(grants), nil
}
