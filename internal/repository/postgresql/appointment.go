package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/salonova/scheduling-backend-go/internal/domain/appointment"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type appointmentRepositoryImpl struct {
	db *database.DB
}

func NewAppointmentRepository(db *database.DB) appointment.Repository {
	return &appointmentRepositoryImpl{db: db}
}

// ListCompletedInRange implements appointment.Repository.
func (a *appointmentRepositoryImpl) ListCompletedInRange(ctx context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, appointment_date, duration_minutes, status, created_at
		FROM appointments
		WHERE staff_id = $1
		  AND status = 'completed'
		  AND appointment_date BETWEEN $2 AND $3
		ORDER BY appointment_date
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListByStaffInRange implements appointment.Repository.
func (a *appointmentRepositoryImpl) ListByStaffInRange(ctx context.Context, staffID string, start, end time.Time) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, appointment_date, duration_minutes, status, created_at
		FROM appointments
		WHERE staff_id = $1
		  AND appointment_date BETWEEN $2 AND $3
		ORDER BY appointment_date
	`

	rows, err := q.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for rows.Next() {
		var appt appointment.Appointment
		var status string
		if err := rows.Scan(
			&appt.ID,
			&appt.StaffID,
			&appt.Date,
			&appt.DurationMinutes,
			&status,
			&appt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appt.Status = appointment.Status(status)
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}
	return appointments, nil
}
