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

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	query := `
		INSERT INTO departments (name, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	department.CreatedAt = time.Now()
	department.UpdatedAt = department.CreatedAt

	err := r.db.QueryRowContext(ctx, query,
		department.Name,
		department.Description,
		department.ImageURL,
		department.CreatedAt,
		department.UpdatedAt,
	).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *departmentRepository) Get(ctx context.Context, id int64) (*model.Department, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM departments
		WHERE id = $1
	`
	var department model.Department
	err := r.db.GetContext(ctx, &department, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*model.Department, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1)
	`
	var department model.Department
	err := r.db.GetContext(ctx, &department, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	query := `
		UPDATE departments
		SET name = $1, description = $2, image_url = $3, updated_at = $4
		WHERE id = $5
	`
	department.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		department.Name,
		department.Description,
		department.ImageURL,
		department.UpdatedAt,
		department.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
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

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM departments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
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

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`
	departments := []*model.Department{}
	err := r.db.SelectContext(ctx, &departments, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
