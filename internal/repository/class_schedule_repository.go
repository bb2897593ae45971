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

type ClassScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewClassScheduleRepository(pool *pgxpool.Pool) *ClassScheduleRepository {
	return &ClassScheduleRepository{pool: pool}
}

const classScheduleColumns = `id, class_id, subject_id, teacher_id, day_of_week, start_min, end_min, created_at, updated_at`

// Create inserts a new class-schedule entry.
func (r *ClassScheduleRepository) Create(ctx context.Context, entry *model.ClassScheduleEntry) error {
	query := `
		INSERT INTO class_schedule (class_id, subject_id, teacher_id, day_of_week, start_min, end_min)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		entry.ClassID,
		entry.SubjectID,
		entry.TeacherID,
		entry.DayOfWeek,
		int(entry.Start),
		int(entry.End),
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create class schedule entry: %w", err)
	}

	return nil
}

// GetByID returns an entry or nil when it does not exist.
func (r *ClassScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassScheduleEntry, error) {
	query := `SELECT ` + classScheduleColumns + ` FROM class_schedule WHERE id = $1`

	entry, err := scanClassScheduleEntry(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get class schedule entry by id: %w", err)
	}

	return entry, nil
}

// ListByTeacher returns all entries for a teacher.
func (r *ClassScheduleRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	query := `
		SELECT ` + classScheduleColumns + `
		FROM class_schedule
		WHERE teacher_id = $1
		ORDER BY day_of_week, start_min
	`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list class schedule by teacher: %w", err)
	}
	defer rows.Close()

	return collectClassScheduleEntries(rows)
}

// ListByClass returns all entries for a class.
func (r *ClassScheduleRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*model.ClassScheduleEntry, error) {
	query := `
		SELECT ` + classScheduleColumns + `
		FROM class_schedule
		WHERE class_id = $1
		ORDER BY day_of_week, start_min
	`

	rows, err := r.pool.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("list class schedule by class: %w", err)
	}
	defer rows.Close()

	return collectClassScheduleEntries(rows)
}

// Update rewrites the entry's assignment and window.
func (r *ClassScheduleRepository) Update(ctx context.Context, entry *model.ClassScheduleEntry) error {
	query := `
		UPDATE class_schedule
		SET class_id = $2, subject_id = $3, teacher_id = $4,
		    day_of_week = $5, start_min = $6, end_min = $7,
		    updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		entry.ID,
		entry.ClassID,
		entry.SubjectID,
		entry.TeacherID,
		entry.DayOfWeek,
		int(entry.Start),
		int(entry.End),
	).Scan(&entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update class schedule entry: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (r *ClassScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM class_schedule WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("class schedule entry not found")
	}

	return nil
}

func collectClassScheduleEntries(rows pgx.Rows) ([]*model.ClassScheduleEntry, error) {
	var entries []*model.ClassScheduleEntry
	for rows.Next() {
		entry, err := scanClassScheduleEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanClassScheduleEntry(row pgx.Row) (*model.ClassScheduleEntry, error) {
	var (
		entry    model.ClassScheduleEntry
		startMin int
		endMin   int
	)
	err := row.Scan(
		&entry.ID,
		&entry.ClassID,
		&entry.SubjectID,
		&entry.TeacherID,
		&entry.DayOfWeek,
		&startMin,
		&endMin,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Start = model.TimeOfDay(startMin)
	entry.End = model.TimeOfDay(endMin)
	return &entry, nil
}
