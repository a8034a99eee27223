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

func (r *bloodBankRepository) List(ctx context.Context) ([]*model.BloodGroup, error) {
	query := `
		SELECT id, blood_group, units, created_at, updated_at
		FROM blood_bank
		ORDER BY blood_group ASC
	`
	groups := []*model.BloodGroup{}
	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blood groups: %w", err)
	}
	return groups, nil
}

func (r *bloodBankRepository) Get(ctx context.Context, id int64) (*model.BloodGroup, error) {
	query := `
		SELECT id, blood_group, units, created_at, updated_at
		FROM blood_bank
		WHERE id = $1
	`
	var group model.BloodGroup
	err := r.db.GetContext(ctx, &group, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blood group: %w", err)
	}
	return &group, nil
}

func (r *bloodBankRepository) UpdateUnits(ctx context.Context, id int64, units int) error {
	query := `
		UPDATE blood_bank
		SET units = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, units, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update blood group units: %w", err)
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
