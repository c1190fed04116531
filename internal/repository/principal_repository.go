package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// PrincipalRepository reads principals and their explicit access grants.
type PrincipalRepository struct {
	pool *pgxpool.Pool
}

// NewPrincipalRepository creates a new PrincipalRepository.
func NewPrincipalRepository(pool *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{pool: pool}
}

// GetByID retrieves a principal by id.
func (r *PrincipalRepository) GetByID(ctx context.Context, id string) (*model.Principal, error) {
	var p model.Principal
	err := r.pool.QueryRow(ctx,
		`SELECT id, role FROM principals WHERE id = $1`, id,
	).Scan(&p.ID, &p.Role)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListGrants retrieves all explicit grants held by a principal.
func (r *PrincipalRepository) ListGrants(ctx context.Context, principalID string) ([]model.AccessGrant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT principal_id, grant_type, target_id
		 FROM access_grants WHERE principal_id = $1`, principalID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []model.AccessGrant
	for rows.Next() {
		var g model.AccessGrant
		if err := rows.Scan(&g.PrincipalID, &g.GrantType, &g.TargetID); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}
