package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// Event types published through the outbox.
const (
	TypeAppointmentCreated       = "appointment.created"
	TypeAppointmentStatusChanged = "appointment.status_changed"
	TypeContactReceived          = "contact.received"
)

// Service appends domain events to the outbox table. The worker binary
// drains them to the message broker.
type Service struct {
	repo repository.OutboxRepository
}

func NewService(repo repository.OutboxRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	evt := &model.OutboxEvent{
		EventType: eventType,
		Payload:   json.RawMessage(data),
	}
	if err := s.repo.Create(ctx, evt); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}
