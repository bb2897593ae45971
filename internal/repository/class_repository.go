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

type ClassRepository struct {
	pool *pgxpool.Pool
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByID returns a class or nil when it does not exist.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	query := `SELECT id, name, is_active, created_at FROM classes WHERE id = $1`

	var c model.Class
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return &c, nil
}

// ListActive returns all active classes.
func (r *ClassRepository) ListActive(ctx context.Context) ([]*model.Class, error) {
	query := `SELECT id, name, is_active, created_at FROM classes WHERE is_active = true ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, &c)
	}

	return classes, rows.Err()
}
