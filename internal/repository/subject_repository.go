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

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// GetByID returns a subject or nil when it does not exist.
func (r *SubjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM subjects
		WHERE id = $1
	`

	var s model.Subject
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subject by id: %w", err)
	}

	return &s, nil
}

// ListActive returns all active subjects.
func (r *SubjectRepository) ListActive(ctx context.Context) ([]*model.Subject, error) {
	query := `
		SELECT id, name, description, is_active, created_at
		FROM subjects
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, &s)
	}

	return subjects, rows.Err()
}
