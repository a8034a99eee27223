package directory

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

const (
	cacheKeyDepartments = "departments"
	cacheKeyDoctors     = "doctors"
	cacheKeyServices    = "services"
)

// Service exposes the hospital directory: departments, doctors, service
// lines, ambulances and the blood bank. Reads are cached in-process because
// this is reference data that changes only through the admin dashboard.
type Service struct {
	departments repository.DepartmentRepository
	doctors     repository.DoctorRepository
	services    repository.ServiceRepository
	ambulances  repository.AmbulanceRepository
	bloodBank   repository.BloodBankRepository
	cache       *gocache.Cache
}

func NewService(
	departments repository.DepartmentRepository,
	doctors repository.DoctorRepository,
	services repository.ServiceRepository,
	ambulances repository.AmbulanceRepository,
	bloodBank repository.BloodBankRepository,
) *Service {
	return &Service{
		departments: departments,
		doctors:     doctors,
		services:    services,
		ambulances:  ambulances,
		bloodBank:   bloodBank,
		cache:       gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// FilterDoctorsByDepartment returns the doctors belonging to the given
// department. No selected department (zero id) means an empty result, and
// malformed records (missing name) are dropped before filtering since
// upstream imports have produced such rows.
func FilterDoctorsByDepartment(doctors []*model.Doctor, departmentID int64) []*model.Doctor {
	filtered := []*model.Doctor{}
	if departmentID == 0 {
		return filtered
	}
	for _, d := range doctors {
		if d == nil || d.Name == "" {
			continue
		}
		if d.DepartmentID == departmentID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func (s *Service) ListDepartments(ctx context.Context) ([]*model.Department, error) {
	if cached, ok := s.cache.Get(cacheKeyDepartments); ok {
		return cached.([]*model.Department), nil
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.Set(cacheKeyDepartments, departments, gocache.DefaultExpiration)
	return departments, nil
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*model.Department, error) {
	department, err := s.departments.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("department", err)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return department, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKeyDoctors); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.Set(cacheKeyDoctors, doctors, gocache.DefaultExpiration)
	return doctors, nil
}

// ListDoctorsByDepartment backs the booking form's dependent doctor
// selector.
func (s *Service) ListDoctorsByDepartment(ctx context.Context, departmentID int64) ([]*model.Doctor, error) {
	key := fmt.Sprintf("doctors:department:%d", departmentID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	doctors = FilterDoctorsByDepartment(doctors, departmentID)
	s.cache.Set(key, doctors, gocache.DefaultExpiration)
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.doctors.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperrors.NotFound("doctor", err)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.HospitalService, error) {
	if cached, ok := s.cache.Get(cacheKeyServices); ok {
		return cached.([]*model.HospitalService), nil
	}

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.Set(cacheKeyServices, services, gocache.DefaultExpiration)
	return services, nil
}

func (s *Service) ListAmbulances(ctx context.Context) ([]*model.Ambulance, error) {
	ambulances, err := s.ambulances.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return ambulances, nil
}

func (s *Service) ListBloodBank(ctx context.Context) ([]*model.BloodGroup, error) {
	groups, err := s.bloodBank.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return groups, nil
}

// Admin writes below. Every write flushes the read cache so the public site
// picks changes up immediately.

func (s *Service) CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	department := &model.Department{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.Flush()
	return department, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, req *model.UpdateDepartmentRequest) (*model.Department, error) {
	department, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.ImageURL != nil {
		department.ImageURL = *req.ImageURL
	}

	if err := s.departments.Update(ctx, department); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NotFound("department", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.cache.Flush()
	return department, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("department", err)
		}
		return apperrors.Internal(err)
	}
	s.cache.Flush()
	return nil
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	// A doctor must reference an existing department.
	if _, err := s.GetDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	doctor := &model.Doctor{
		Name:         req.Name,
		Specialty:    req.Specialty,
		DepartmentID: req.DepartmentID,
		Email:        req.Email,
		Phone:        req.Phone,
		Degrees:      req.Degrees,
		Schedule:     req.Schedule,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.cache.Flush()
	return doctor, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.GetDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		doctor.DepartmentID = *req.DepartmentID
	}
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Degrees != nil {
		doctor.Degrees = *req.Degrees
	}
	if req.Schedule != nil {
		doctor.Schedule = *req.Schedule
	}

	if err := s.doctors.Update(ctx, doctor); err != nil {
		if err == repository.ErrNotFound {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.cache.Flush()
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.doctors.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("doctor", err)
		}
		return apperrors.Internal(err)
	}
	s.cache.Flush()
	return nil
}

func (s *Service) CreateAmbulance(ctx context.Context, req *model.CreateAmbulanceRequest) (*model.Ambulance, error) {
	status := req.Status
	if status == "" {
		status = "available"
	}
	ambulance := &model.Ambulance{
		VehicleNumber: req.VehicleNumber,
		DriverName:    req.DriverName,
		DriverPhone:   req.DriverPhone,
		Status:        status,
	}
	if err := s.ambulances.Create(ctx, ambulance); err != nil {
		return nil, apperrors.Internal(err)
	}
	return ambulance, nil
}

func (s *Service) DeleteAmbulance(ctx context.Context, id int64) error {
	if err := s.ambulances.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("ambulance", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) UpdateBloodGroupUnits(ctx context.Context, id int64, units int) error {
	if units < 0 {
		return apperrors.BadRequest("units cannot be negative", nil)
	}
	if err := s.bloodBank.UpdateUnits(ctx, id, units); err != nil {
		if err == repository.ErrNotFound {
			return apperrors.NotFound("blood group", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}
