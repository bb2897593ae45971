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

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

const availabilityColumns = `id, teacher_id, is_recurring, day_of_week, specific_date, start_min, end_min, is_active, notes, created_at, updated_at`

// Create inserts a new availability rule.
func (r *AvailabilityRepository) Create(ctx context.Context, rule *model.AvailabilityRule) error {
	query := `
		INSERT INTO availability_rules (teacher_id, is_recurring, day_of_week, specific_date, start_min, end_min, is_active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		rule.TeacherID,
		rule.IsRecurring,
		rule.DayOfWeek,
		rule.SpecificDate,
		int(rule.Start),
		int(rule.End),
		rule.IsActive,
		rule.Notes,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create availability rule: %w", err)
	}

	return nil
}

// GetByID returns a rule or nil when it does not exist.
func (r *AvailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AvailabilityRule, error) {
	query := `SELECT ` + availabilityColumns + ` FROM availability_rules WHERE id = $1`

	rule, err := scanAvailabilityRule(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get availability rule by id: %w", err)
	}

	return rule, nil
}

// ListByTeacher returns the teacher's rules, optionally only active ones.
func (r *AvailabilityRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID, activeOnly bool) ([]*model.AvailabilityRule, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_rules
		WHERE teacher_id = $1 AND ($2 = false OR is_active = true)
		ORDER BY is_recurring DESC, day_of_week, specific_date, start_min
	`

	rows, err := r.pool.Query(ctx, query, teacherID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list availability rules: %w", err)
	}
	defer rows.Close()

	var rules []*model.AvailabilityRule
	for rows.Next() {
		rule, err := scanAvailabilityRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan availability rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// Update rewrites the rule's pattern, window and notes.
func (r *AvailabilityRepository) Update(ctx context.Context, rule *model.AvailabilityRule) error {
	query := `
		UPDATE availability_rules
		SET is_recurring = $2, day_of_week = $3, specific_date = $4,
		    start_min = $5, end_min = $6, is_active = $7, notes = $8,
		    updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		rule.ID,
		rule.IsRecurring,
		rule.DayOfWeek,
		rule.SpecificDate,
		int(rule.Start),
		int(rule.End),
		rule.IsActive,
		rule.Notes,
	).Scan(&rule.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update availability rule: %w", err)
	}

	return nil
}

// Deactivate soft-deletes the rule. Rules are never removed, is_active
// gates their visibility to the booking engine.
func (r *AvailabilityRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE availability_rules SET is_active = false, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate availability rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("availability rule not found")
	}

	return nil
}

func scanAvailabilityRule(row pgx.Row) (*model.AvailabilityRule, error) {
	var (
		rule     model.AvailabilityRule
		startMin int
		endMin   int
	)
	err := row.Scan(
		&rule.ID,
		&rule.TeacherID,
		&rule.IsRecurring,
		&rule.DayOfWeek,
		&rule.SpecificDate,
		&startMin,
		&endMin,
		&rule.IsActive,
		&rule.Notes,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rule.Start = model.TimeOfDay(startMin)
	rule.End = model.TimeOfDay(endMin)
	return &rule, nil
}
