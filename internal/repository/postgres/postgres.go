package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/medicore/hospital-api/internal/repository"
)

type departmentRepository struct {
	db *sqlx.DB
}

type doctorRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type contactRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type ambulanceRepository struct {
	db *sqlx.DB
}

type bloodBankRepository struct {
	db *sqlx.DB
}

type userRepository struct {
	db *sqlx.DB
}

type outboxRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewAmbulanceRepository(db *sqlx.DB) repository.AmbulanceRepository {
	return &ambulanceRepository{db: db}
}

func NewBloodBankRepository(db *sqlx.DB) repository.BloodBankRepository {
	return &bloodBankRepository{db: db}
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func NewOutboxRepository(db *sqlx.DB) repository.OutboxRepository {
	return &outboxRepository{db: db}
}
