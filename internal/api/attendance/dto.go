package attendance

type RecordAttendanceRequest struct {
	Date         string `json:"date"`
	Status       string `json:"status" validate:"required,oneof=present absent late"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

type ChildResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	GroupName   string `json:"group_name"`
}

type ChildListResponse struct {
	Children []ChildResponse `json:"children"`
	Total    int             `json:"total"`
}

type AttendanceRecordResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
}

type AttendanceSummaryResponse struct {
	ChildID        string                     `json:"child_id"`
	ChildName      string                     `json:"child_name"`
	Today          *AttendanceRecordResponse  `json:"today,omitempty"`
	History        []AttendanceRecordResponse `json:"history"`
	PresentDays    int                        `json:"present_days"`
	TotalDays      int                        `json:"total_days"`
	AttendanceRate int                        `json:"attendance_rate"`
}
