package entity

import "time"

type AttendanceRecord struct {
	ID           string    `json:"id"`
	ChildID      string    `json:"child_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
	RecordedBy   string    `json:"recorded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
)
