package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

func doctor(id, departmentID int64, name string) *model.Doctor {
	return &model.Doctor{
		Base:         model.Base{ID: id},
		Name:         name,
		DepartmentID: departmentID,
	}
}

func TestFilterDoctorsByDepartment(t *testing.T) {
	doctors := []*model.Doctor{
		doctor(1, 1, "Dr. A"),
		doctor(2, 2, "Dr. B"),
		doctor(3, 1, "Dr. C"),
		nil,
		doctor(4, 1, ""),
	}

	t.Run("matching department", func(t *testing.T) {
		got := FilterDoctorsByDepartment(doctors, 1)
		require.Len(t, got, 2)
		assert.Equal(t, "Dr. A", got[0].Name)
		assert.Equal(t, "Dr. C", got[1].Name)
	})

	t.Run("no selection yields empty", func(t *testing.T) {
		got := FilterDoctorsByDepartment(doctors, 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown department yields empty", func(t *testing.T) {
		got := FilterDoctorsByDepartment(doctors, 9)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed records dropped", func(t *testing.T) {
		for _, d := range FilterDoctorsByDepartment(doctors, 1) {
			require.NotNil(t, d)
			assert.NotEmpty(t, d.Name)
		}
	})
}

type fakeDepartmentRepo struct {
	departments map[int64]*model.Department
	listCalls   int
	nextID      int64
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d *model.Department) error {
	r.nextID++
	d.ID = r.nextID
	r.departments[d.ID] = d
	return nil
}

func (r *fakeDepartmentRepo) Get(_ context.Context, id int64) (*model.Department, error) {
	if d, ok := r.departments[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *model.Department) error {
	if _, ok := r.departments[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.departments[d.ID] = d
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.departments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.departments, id)
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]*model.Department, error) {
	r.listCalls++
	out := make([]*model.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d)
	}
	return out, nil
}

type fakeDoctorRepo struct {
	doctors map[int64]*model.Doctor
	nextID  int64
}

func (r *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	r.nextID++
	d.ID = r.nextID
	r.doctors[d.ID] = d
	return nil
}

func (r *fakeDoctorRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	if d, ok := r.doctors[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) Update(_ context.Context, d *model.Doctor) error {
	if _, ok := r.doctors[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.doctors[d.ID] = d
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.doctors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) ListByDepartment(_ context.Context, departmentID int64) ([]*model.Doctor, error) {
	out := []*model.Doctor{}
	for _, d := range r.doctors {
		if d.DepartmentID == departmentID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeServiceRepo struct{}

func (fakeServiceRepo) List(context.Context) ([]*model.HospitalService, error) {
	return []*model.HospitalService{}, nil
}

type fakeAmbulanceRepo struct {
	ambulances map[int64]*model.Ambulance
	nextID     int64
}

func (r *fakeAmbulanceRepo) Create(_ context.Context, a *model.Ambulance) error {
	r.nextID++
	a.ID = r.nextID
	r.ambulances[a.ID] = a
	return nil
}

func (r *fakeAmbulanceRepo) Get(_ context.Context, id int64) (*model.Ambulance, error) {
	if a, ok := r.ambulances[id]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAmbulanceRepo) Update(_ context.Context, a *model.Ambulance) error {
	if _, ok := r.ambulances[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.ambulances[a.ID] = a
	return nil
}

func (r *fakeAmbulanceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.ambulances[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.ambulances, id)
	return nil
}

func (r *fakeAmbulanceRepo) List(_ context.Context) ([]*model.Ambulance, error) {
	out := make([]*model.Ambulance, 0, len(r.ambulances))
	for _, a := range r.ambulances {
		out = append(out, a)
	}
	return out, nil
}

type fakeBloodBankRepo struct {
	groups map[int64]*model.BloodGroup
}

func (r *fakeBloodBankRepo) List(_ context.Context) ([]*model.BloodGroup, error) {
	out := make([]*model.BloodGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeBloodBankRepo) Get(_ context.Context, id int64) (*model.BloodGroup, error) {
	if g, ok := r.groups[id]; ok {
		return g, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBloodBankRepo) UpdateUnits(_ context.Context, id int64, units int) error {
	g, ok := r.groups[id]
	if !ok {
		return repository.ErrNotFound
	}
	g.Units = units
	return nil
}

func newTestService() (*Service, *fakeDepartmentRepo, *fakeDoctorRepo, *fakeAmbulanceRepo, *fakeBloodBankRepo) {
	departments := &fakeDepartmentRepo{departments: map[int64]*model.Department{}}
	doctors := &fakeDoctorRepo{doctors: map[int64]*model.Doctor{}}
	ambulances := &fakeAmbulanceRepo{ambulances: map[int64]*model.Ambulance{}}
	bloodBank := &fakeBloodBankRepo{groups: map[int64]*model.BloodGroup{}}
	svc := NewService(departments, doctors, fakeServiceRepo{}, ambulances, bloodBank)
	return svc, departments, doctors, ambulances, bloodBank
}

func TestListDepartmentsCached(t *testing.T) {
	svc, departments, _, _, _ := newTestService()
	_, err := svc.CreateDepartment(context.Background(), &model.CreateDepartmentRequest{Name: "Cardiology"})
	require.NoError(t, err)

	_, err = svc.ListDepartments(context.Background())
	require.NoError(t, err)
	_, err = svc.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, departments.listCalls)
}

func TestAdminWritesFlushCache(t *testing.T) {
	svc, departments, _, _, _ := newTestService()
	_, err := svc.CreateDepartment(context.Background(), &model.CreateDepartmentRequest{Name: "Cardiology"})
	require.NoError(t, err)

	list, err := svc.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, departments.listCalls)

	_, err = svc.CreateDepartment(context.Background(), &model.CreateDepartmentRequest{Name: "Neurology"})
	require.NoError(t, err)

	list, err = svc.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, departments.listCalls)
}

func TestListDoctorsByDepartment(t *testing.T) {
	svc, _, doctors, _, _ := newTestService()
	dept, err := svc.CreateDepartment(context.Background(), &model.CreateDepartmentRequest{Name: "Cardiology"})
	require.NoError(t, err)

	doctors.doctors[1] = doctor(1, dept.ID, "Dr. A")
	doctors.doctors[2] = doctor(2, dept.ID+1, "Dr. B")

	got, err := svc.ListDoctorsByDepartment(context.Background(), dept.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. A", got[0].Name)
}

func TestCreateDoctorRequiresDepartment(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:         "Dr. A",
		Specialty:    "Cardiology",
		DepartmentID: 99,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateAmbulanceDefaultsStatus(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	ambulance, err := svc.CreateAmbulance(context.Background(), &model.CreateAmbulanceRequest{
		VehicleNumber: "KA-01-1234",
		DriverName:    "Ravi",
	})
	require.NoError(t, err)
	assert.Equal(t, "available", ambulance.Status)
}

func TestUpdateBloodGroupUnits(t *testing.T) {
	svc, _, _, _, bloodBank := newTestService()
	bloodBank.groups[1] = &model.BloodGroup{Base: model.Base{ID: 1}, Group: "O+", Units: 3}

	require.NoError(t, svc.UpdateBloodGroupUnits(context.Background(), 1, 10))
	assert.Equal(t, 10, bloodBank.groups[1].Units)

	err := svc.UpdateBloodGroupUnits(context.Background(), 1, -1)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	err = svc.UpdateBloodGroupUnits(context.Background(), 99, 5)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
