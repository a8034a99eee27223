package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// All repository interfaces in one file
type (
	DepartmentRepository interface {
		Create(ctx context.Context, department *model.Department) error
		Get(ctx context.Context, id int64) (*model.Department, error)
		GetByName(ctx context.Context, name string) (*model.Department, error)
		Update(ctx context.Context, department *model.Department) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Department, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Doctor, error)
		ListByDepartment(ctx context.Context, departmentID int64) ([]*model.Doctor, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}

	ContactRepository interface {
		Create(ctx context.Context, message *model.ContactMessage) error
		List(ctx context.Context) ([]*model.ContactMessage, error)
	}

	ServiceRepository interface {
		List(ctx context.Context) ([]*model.HospitalService, error)
	}

	AmbulanceRepository interface {
		Create(ctx context.Context, ambulance *model.Ambulance) error
		Get(ctx context.Context, id int64) (*model.Ambulance, error)
		Update(ctx context.Context, ambulance *model.Ambulance) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Ambulance, error)
	}

	BloodBankRepository interface {
		List(ctx context.Context) ([]*model.BloodGroup, error)
		Get(ctx context.Context, id int64) (*model.BloodGroup, error)
		UpdateUnits(ctx context.Context, id int64, units int) error
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
		DeleteProcessedBefore(ctx context.Context, cutoffDays int) (int64, error)
	}
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")
