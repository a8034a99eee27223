package model

// HospitalService is a service line shown on the public site (cardiology
// checkups, diagnostics, ambulance transport and so on). Reference data.
type HospitalService struct {
	Base
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	Icon        string `db:"icon" json:"icon,omitempty"`
}

// Ambulance is a fleet vehicle managed from the admin dashboard.
type Ambulance struct {
	Base
	VehicleNumber string `db:"vehicle_number" json:"vehicle_number"`
	DriverName    string `db:"driver_name" json:"driver_name"`
	DriverPhone   string `db:"driver_phone" json:"driver_phone,omitempty"`
	Status        string `db:"status" json:"status"`
}

type CreateAmbulanceRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	DriverName    string `json:"driver_name" binding:"required"`
	DriverPhone   string `json:"driver_phone"`
	Status        string `json:"status"`
}

// BloodGroup tracks available units per blood group in the blood bank.
type BloodGroup struct {
	Base
	Group string `db:"blood_group" json:"blood_group"`
	Units int    `db:"units" json:"units"`
}

type UpdateBloodGroupRequest struct {
	Units *int `json:"units" binding:"required"`
}
