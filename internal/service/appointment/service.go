package appointment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/medicore/hospital-api/internal/email"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/service/event"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

var validate = validator.New()

type Service struct {
	repo    repository.AppointmentRepository
	doctors repository.DoctorRepository
	events  *event.Service
	mailer  email.Sender
}

func NewService(
	repo repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	events *event.Service,
	mailer email.Sender,
) *Service {
	return &Service{
		repo:    repo,
		doctors: doctors,
		events:  events,
		mailer:  mailer,
	}
}

// ResolveDepartment normalizes the two booking entry points into one stored
// department value: the department name when supplied, otherwise the
// stringified numeric id. An empty result means the request carried neither.
func ResolveDepartment(req *model.CreateAppointmentRequest) string {
	if dept := strings.TrimSpace(req.Department); dept != "" {
		return dept
	}
	if req.DepartmentID > 0 {
		return strconv.FormatInt(req.DepartmentID, 10)
	}
	return ""
}

func (s *Service) validateRequest(req *model.CreateAppointmentRequest) error {
	required := []struct {
		value string
		field string
	}{
		{req.PatientName, "patientName"},
		{req.PatientEmail, "patientEmail"},
		{req.PatientPhone, "patientPhone"},
		{req.Date, "appointmentDate"},
		{req.Time, "appointmentTime"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.BadRequest(fmt.Sprintf("%s is required", f.field), nil)
		}
	}

	if err := validate.Var(req.PatientEmail, "email"); err != nil {
		return apperrors.BadRequest("patientEmail must be a valid email address", err)
	}

	return nil
}

// CreateAppointment validates and persists a booking request. Identical
// payloads create distinct rows; there is no deduplication.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	department := ResolveDepartment(req)
	if department == "" {
		return nil, apperrors.BadRequest("department could not be resolved", nil)
	}

	apt := &model.Appointment{
		PatientName:  strings.TrimSpace(req.PatientName),
		PatientEmail: strings.TrimSpace(req.PatientEmail),
		PatientPhone: strings.TrimSpace(req.PatientPhone),
		Department:   department,
		DoctorID:     req.DoctorID,
		DoctorName:   strings.TrimSpace(req.DoctorName),
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		Status:       model.AppointmentStatusConfirmed,
	}

	if req.DoctorID != nil {
		doctor, err := s.doctors.Get(ctx, *req.DoctorID)
		if err == repository.ErrNotFound {
			return nil, apperrors.BadRequest("doctor not found", err)
		}
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		// The department field may be a name rather than an id; the
		// membership check only applies when it parses as one.
		if deptID, perr := strconv.ParseInt(department, 10, 64); perr == nil && doctor.DepartmentID != deptID {
			return nil, apperrors.BadRequest("doctor does not belong to the selected department", nil)
		}
		if apt.DoctorName == "" {
			apt.DoctorName = doctor.Name
		}
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.events.Record(ctx, event.TypeAppointmentCreated, apt); err != nil {
		log.Error().Err(err).Int64("appointment_id", apt.ID).Msg("failed to record booking event")
	}

	go func(a model.Appointment) {
		if err := s.mailer.SendBookingConfirmation(&a); err != nil {
			log.Error().Err(err).Int64("appointment_id", a.ID).Msg("failed to send confirmation email")
		}
	}(*apt)

	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return apt, nil
}

// ListAppointments returns all bookings newest first, for the admin
// dashboard's polling list.
func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// UpdateStatus moves an appointment to the given status. Any known status
// may overwrite any other; there is no transition table, so a cancelled
// appointment can be reopened by an admin.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	if !model.ValidStatus(status) {
		return apperrors.BadRequest(fmt.Sprintf("invalid status %q", status), nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}

	if err := s.events.Record(ctx, event.TypeAppointmentStatusChanged, map[string]interface{}{
		"appointment_id": id,
		"status":         status,
	}); err != nil {
		log.Error().Err(err).Int64("appointment_id", id).Msg("failed to record status change event")
	}

	return nil
}
