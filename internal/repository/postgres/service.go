package postgres

import (
	"context"
	"fmt"

	"github.com/medicore/hospital-api/internal/model"
)

func (r *serviceRepository) List(ctx context.Context) ([]*model.HospitalService, error) {
	query := `
		SELECT id, name, description, icon, created_at, updated_at
		FROM services
		ORDER BY name ASC
	`
	services := []*model.HospitalService{}
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
