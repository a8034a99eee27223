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

func (r *ambulanceRepository) Create(ctx context.Context, ambulance *model.Ambulance) error {
	query := `
		INSERT INTO ambulances (vehicle_number, driver_name, driver_phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	ambulance.CreatedAt = time.Now()
	ambulance.UpdatedAt = ambulance.CreatedAt

	err := r.db.QueryRowContext(ctx, query,
		ambulance.VehicleNumber,
		ambulance.DriverName,
		ambulance.DriverPhone,
		ambulance.Status,
		ambulance.CreatedAt,
		ambulance.UpdatedAt,
	).Scan(&ambulance.ID)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", err)
	}
	return nil
}

func (r *ambulanceRepository) Get(ctx context.Context, id int64) (*model.Ambulance, error) {
	query := `
		SELECT id, vehicle_number, driver_name, driver_phone, status, created_at, updated_at
		FROM ambulances
		WHERE id = $1
	`
	var ambulance model.Ambulance
	err := r.db.GetContext(ctx, &ambulance, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ambulance: %w", err)
	}
	return &ambulance, nil
}

func (r *ambulanceRepository) Update(ctx context.Context, ambulance *model.Ambulance) error {
	query := `
		UPDATE ambulances
		SET vehicle_number = $1, driver_name = $2, driver_phone = $3, status = $4, updated_at = $5
		WHERE id = $6
	`
	ambulance.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		ambulance.VehicleNumber,
		ambulance.DriverName,
		ambulance.DriverPhone,
		ambulance.Status,
		ambulance.UpdatedAt,
		ambulance.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ambulance: %w", err)
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

func (r *ambulanceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM ambulances WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete ambulance: %w", err)
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

func (r *ambulanceRepository) List(ctx context.Context) ([]*model.Ambulance, error) {
	query := `
		SELECT id, vehicle_number, driver_name, driver_phone, status, created_at, updated_at
		FROM ambulances
		ORDER BY vehicle_number ASC
	`
	ambulances := []*model.Ambulance{}
	err := r.db.SelectContext(ctx, &ambulances, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	return ambulances, nil
}
