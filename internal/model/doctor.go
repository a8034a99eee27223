package model

// Doctor belongs to exactly one department. Contact and profile fields are
// optional; upstream imports have produced rows with missing names, so
// consumers must not assume every field is populated.
type Doctor struct {
	Base
	Name         string `db:"name" json:"name"`
	Specialty    string `db:"specialty" json:"specialty"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
	Email        string `db:"email" json:"email,omitempty"`
	Phone        string `db:"phone" json:"phone,omitempty"`
	Degrees      string `db:"degrees" json:"degrees,omitempty"`
	Schedule     string `db:"schedule" json:"schedule,omitempty"`
}

type CreateDoctorRequest struct {
	Name         string `json:"name" binding:"required"`
	Specialty    string `json:"specialty" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Degrees      string `json:"degrees"`
	Schedule     string `json:"schedule"`
}

type UpdateDoctorRequest struct {
	Name         *string `json:"name"`
	Specialty    *string `json:"specialty"`
	DepartmentID *int64  `json:"department_id"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Degrees      *string `json:"degrees"`
	Schedule     *string `json:"schedule"`
}
