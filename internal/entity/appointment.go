package entity

import "time"

type Appointment struct {
	ID              string    `json:"id"`
	ChildID         string    `json:"child_id"`
	ParentID        string    `json:"parent_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Reason          string    `json:"reason"`
	AppointmentType string    `json:"appointment_type"`
	IsEmergency     bool      `json:"is_emergency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentStatus string

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	AppointmentTypeOnsite = "onsite"
	AppointmentTypeVideo  = "video"
)
