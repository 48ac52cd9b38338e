package entity

import "time"

type Child struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	GroupName   string    `json:"group_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
