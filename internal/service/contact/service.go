package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/service/event"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

var validate = validator.New()

type Service struct {
	repo   repository.ContactRepository
	events *event.Service
}

func NewService(repo repository.ContactRepository, events *event.Service) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) CreateMessage(ctx context.Context, req *model.CreateContactRequest) (*model.ContactMessage, error) {
	required := []struct {
		value string
		field string
	}{
		{req.Name, "name"},
		{req.Email, "email"},
		{req.Message, "message"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.BadRequest(fmt.Sprintf("%s is required", f.field), nil)
		}
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return nil, apperrors.BadRequest("email must be a valid email address", err)
	}

	message := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.events.Record(ctx, event.TypeContactReceived, message); err != nil {
		log.Error().Err(err).Int64("message_id", message.ID).Msg("failed to record contact event")
	}

	return message, nil
}

// ListMessages returns all contact messages newest first, for the admin
// inbox.
func (s *Service) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return messages, nil
}
