package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorlane/tutorlane/internal/model"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetByID returns a profile or nil when it does not exist.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, full_name, role, is_active, created_at
		FROM profiles
		WHERE id = $1
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.FullName, &p.Role, &p.IsActive, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile by id: %w", err)
	}

	return &p, nil
}

// ListByRole returns active profiles holding the given role, ordered by name.
func (r *ProfileRepository) ListByRole(ctx context.Context, role model.Role) ([]*model.Profile, error) {
	query := `
		SELECT id, full_name, role, is_active, created_at
		FROM profiles
		WHERE role = $1 AND is_active = true
		ORDER BY full_name
	`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list profiles by role: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Role, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, &p)
	}

	return profiles, rows.Err()
}
