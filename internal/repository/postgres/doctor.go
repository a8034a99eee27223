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

const doctorColumns = `id, name, specialty, department_id, email, phone, degrees, schedule, created_at, updated_at`

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			name, specialty, department_id, email, phone,
			degrees, schedule, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt

	err := r.db.QueryRowContext(ctx, query,
		doctor.Name,
		doctor.Specialty,
		doctor.DepartmentID,
		doctor.Email,
		doctor.Phone,
		doctor.Degrees,
		doctor.Schedule,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	).Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := fmt.Sprintf(`SELECT %s FROM doctors WHERE id = $1`, doctorColumns)

	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $1, specialty = $2, department_id = $3, email = $4,
			phone = $5, degrees = $6, schedule = $7, updated_at = $8
		WHERE id = $9
	`
	doctor.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		doctor.Name,
		doctor.Specialty,
		doctor.DepartmentID,
		doctor.Email,
		doctor.Phone,
		doctor.Degrees,
		doctor.Schedule,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
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

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM doctors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
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

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := fmt.Sprintf(`SELECT %s FROM doctors ORDER BY name ASC`, doctorColumns)

	doctors := []*model.Doctor{}
	err := r.db.SelectContext(ctx, &doctors, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]*model.Doctor, error) {
	query := fmt.Sprintf(`SELECT %s FROM doctors WHERE department_id = $1 ORDER BY name ASC`, doctorColumns)

	doctors := []*model.Doctor{}
	err := r.db.SelectContext(ctx, &doctors, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors by department: %w", err)
	}
	return doctors, nil
}
