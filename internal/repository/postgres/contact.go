package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medicore/hospital-api/internal/model"
)

func (r *contactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	message.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Message,
		message.CreatedAt,
	).Scan(&message.ID)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`
	messages := []*model.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
