package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			patient_name, patient_email, patient_phone, department,
			doctor_id, doctor_name, appointment_date, appointment_time,
			notes, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	appointment.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		appointment.PatientName,
		appointment.PatientEmail,
		appointment.PatientPhone,
		appointment.Department,
		appointment.DoctorID,
		appointment.DoctorName,
		appointment.Date,
		appointment.Time,
		appointment.Notes,
		appointment.Status,
		appointment.CreatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT id, patient_name, patient_email, patient_phone, department,
			   doctor_id, doctor_name, appointment_date, appointment_time,
			   notes, status, created_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_name, patient_email, patient_phone, department,
			   doctor_id, doctor_name, appointment_date, appointment_time,
			   notes, status, created_at
		FROM appointments
		ORDER BY created_at DESC, id DESC
	`
	appointments := []*model.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
