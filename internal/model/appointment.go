package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
// Transitions between them are deliberately unconstrained: any status may
// overwrite any other, so cancelled appointments can be reopened.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment captures a booking request. Patient contact details are taken
// at booking time and are not tied to a user record. Department is stored as
// a string: either the department name or a stringified numeric id, depending
// on which entry point submitted the booking.
type Appointment struct {
	ID           int64             `db:"id" json:"id"`
	PatientName  string            `db:"patient_name" json:"patientName"`
	PatientEmail string            `db:"patient_email" json:"patientEmail"`
	PatientPhone string            `db:"patient_phone" json:"patientPhone"`
	Department   string            `db:"department" json:"department"`
	DoctorID     *int64            `db:"doctor_id" json:"doctorId,omitempty"`
	DoctorName   string            `db:"doctor_name" json:"doctorName,omitempty"`
	Date         string            `db:"appointment_date" json:"appointmentDate"`
	Time         string            `db:"appointment_time" json:"appointmentTime"`
	Notes        string            `db:"notes" json:"notes,omitempty"`
	Status       AppointmentStatus `db:"status" json:"status"`
	CreatedAt    time.Time         `db:"created_at" json:"createdAt"`
}

// CreateAppointmentRequest is the single normalized booking payload. The two
// client entry points (full-page form and modal) differ only in whether they
// send a department name or a numeric id; both bind here.
type CreateAppointmentRequest struct {
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
	Department   string `json:"department"`
	DepartmentID int64  `json:"departmentId"`
	DoctorID     *int64 `json:"doctorId"`
	DoctorName   string `json:"doctorName"`
	Date         string `json:"appointmentDate"`
	Time         string `json:"appointmentTime"`
	Notes        string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status"`
}
