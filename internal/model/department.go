package model

// Department is admin-managed reference data. Doctors belong to exactly
// one department and the booking flow filters doctors by it.
type Department struct {
	Base
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"image_url,omitempty"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
