package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorlane/tutorlane/internal/model"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, teacher_id, student_id, subject_id, appointment_date, start_min, end_min, status, notes, created_at, updated_at`

// CreateIfFree inserts the appointment only if no blocking appointment for
// the same teacher and date overlaps its window. The check and the insert
// are a single statement, so two concurrent bookings for the same slot
// cannot both succeed; the exclusion constraint on the table backs this up.
// Returns false when a conflicting row already exists.
func (r *AppointmentRepository) CreateIfFree(ctx context.Context, apt *model.Appointment) (bool, error) {
	query := `
		INSERT INTO appointments (teacher_id, student_id, subject_id, appointment_date, start_min, end_min, status, notes)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM appointments
			WHERE teacher_id = $1
			  AND appointment_date = $4
			  AND status IN ('scheduled', 'confirmed')
			  AND start_min < $6
			  AND end_min > $5
		)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		apt.TeacherID,
		apt.StudentID,
		apt.SubjectID,
		apt.Date,
		int(apt.Start),
		int(apt.End),
		apt.Status,
		apt.Notes,
	).Scan(&apt.ID, &apt.CreatedAt, &apt.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create appointment: %w", err)
	}

	return true, nil
}

// GetByID returns an appointment or nil when it does not exist.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	apt, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return apt, nil
}

// ListByTeacherBetween returns the teacher's appointments with dates in
// [from, to], optionally only those still blocking their slot.
func (r *AppointmentRepository) ListByTeacherBetween(ctx context.Context, teacherID uuid.UUID, from, to time.Time, blockingOnly bool) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE teacher_id = $1
		  AND appointment_date BETWEEN $2 AND $3
		  AND ($4 = false OR status IN ('scheduled', 'confirmed'))
		ORDER BY appointment_date, start_min
	`

	rows, err := r.pool.Query(ctx, query, teacherID, from, to, blockingOnly)
	if err != nil {
		return nil, fmt.Errorf("list appointments by teacher: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListByTeacherDate returns the teacher's appointments on one date.
func (r *AppointmentRepository) ListByTeacherDate(ctx context.Context, teacherID uuid.UUID, date time.Time, blockingOnly bool) ([]*model.Appointment, error) {
	return r.ListByTeacherBetween(ctx, teacherID, date, date, blockingOnly)
}

// ListByTeacherWeekday returns blocking appointments for the teacher on
// dates with the given weekday, starting from the given date. Used by the
// class-schedule cross-check.
func (r *AppointmentRepository) ListByTeacherWeekday(ctx context.Context, teacherID uuid.UUID, weekday int, from time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE teacher_id = $1
		  AND appointment_date >= $2
		  AND EXTRACT(DOW FROM appointment_date) = $3
		  AND status IN ('scheduled', 'confirmed')
		ORDER BY appointment_date, start_min
	`

	rows, err := r.pool.Query(ctx, query, teacherID, from, weekday)
	if err != nil {
		return nil, fmt.Errorf("list appointments by weekday: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListByStudent returns all of the student's appointments, newest first.
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE student_id = $1
		ORDER BY appointment_date DESC, start_min DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by student: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListByTeacher returns all of the teacher's appointments, newest first.
func (r *AppointmentRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE teacher_id = $1
		ORDER BY appointment_date DESC, start_min DESC
	`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by teacher: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// UpdateStatus moves the appointment to the given status.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found")
	}

	return nil
}

// UpdateNotes replaces the appointment's notes.
func (r *AppointmentRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	query := `UPDATE appointments SET notes = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, notes)
	if err != nil {
		return fmt.Errorf("update appointment notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found")
	}

	return nil
}

func collectAppointments(rows pgx.Rows) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, apt)
	}
	return appointments, rows.Err()
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var (
		apt      model.Appointment
		startMin int
		endMin   int
	)
	err := row.Scan(
		&apt.ID,
		&apt.TeacherID,
		&apt.StudentID,
		&apt.SubjectID,
		&apt.Date,
		&startMin,
		&endMin,
		&apt.Status,
		&apt.Notes,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	apt.Start = model.TimeOfDay(startMin)
	apt.End = model.TimeOfDay(endMin)
	return &apt, nil
}
