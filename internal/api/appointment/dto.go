package appointment

import "time"

type CreateAppointmentRequest struct {
	ChildID         string `json:"child_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason" validate:"required,max=500"`
	AppointmentType string `json:"appointment_type" validate:"required,oneof=onsite video"`
	IsEmergency     bool   `json:"is_emergency"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	ChildID         string    `json:"child_id"`
	ChildName       string    `json:"child_name,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Reason          string    `json:"reason"`
	AppointmentType string    `json:"appointment_type"`
	IsEmergency     bool      `json:"is_emergency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
