package attendanceService

import (
	"TinyTotsGolang/internal/api/attendance"
	"TinyTotsGolang/internal/entity"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

const historyWindowDays = 30

func (s *attendanceService) GetAttendanceSummary(ctx context.Context, parentID, childID string) (*attendance.AttendanceSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.attendanceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	child, err := repoClient.Children.GetChildByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	if child.ParentID != parentID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"child_id":   childID,
			"parent_id":  parentID,
		}).Warn("Child does not belong to requesting parent")
		return nil, attendance.ErrChildNotOwned
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	since := now.AddDate(0, 0, -historyWindowDays).Format("2006-01-02")

	records, err := repoClient.Attendance.GetRecordsSince(ctx, childID, since)
	if err != nil {
		return nil, err
	}

	summary := &attendance.AttendanceSummaryResponse{
		ChildID:   childID,
		ChildName: fmt.Sprintf("%s %s", child.FirstName, child.LastName),
		History:   make([]attendance.AttendanceRecordResponse, 0, len(records)),
	}

	todayRecord, found, err := repoClient.Attendance.GetRecordByDate(ctx, childID, today)
	if err != nil {
		return nil, err
	}
	if found {
		resp := makeRecordResponse(todayRecord)
		summary.Today = &resp
	}

	presentDays := 0
	for _, record := range records {
		summary.History = append(summary.History, makeRecordResponse(record))

		if record.Status == entity.AttendanceStatusPresent || record.Status == entity.AttendanceStatusLate {
			presentDays++
		}
	}

	totalDays := weekdaysBetween(now.AddDate(0, 0, -historyWindowDays), now)
	summary.PresentDays = presentDays
	summary.TotalDays = totalDays
	if totalDays > 0 {
		summary.AttendanceRate = int(math.Round(float64(presentDays) / float64(totalDays) * 100))
	}

	return summary, nil
}

func (s *attendanceService) ListChildren(ctx context.Context, parentID string) (*attendance.ChildListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.attendanceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	children, err := repoClient.Children.GetChildrenByParentID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ChildResponse, 0, len(children))
	for _, child := range children {
		responses = append(responses, attendance.ChildResponse{
			ID:          child.ID,
			FirstName:   child.FirstName,
			LastName:    child.LastName,
			DateOfBirth: child.DateOfBirth,
			GroupName:   child.GroupName,
		})
	}

	return &attendance.ChildListResponse{
		Children: responses,
		Total:    len(responses),
	}, nil
}

// RecordAttendance writes a day's record for a child. One record per child
// per day; a second submission for the same date is rejected.
func (s *attendanceService) RecordAttendance(ctx context.Context, recordedBy, childID string, req attendance.RecordAttendanceRequest) (*attendance.AttendanceRecordResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, attendance.ErrInvalidDate
	}

	repoClient, err := s.attendanceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repoClient.Children.GetChildByID(ctx, childID); err != nil {
		return nil, err
	}

	_, found, err := repoClient.Attendance.GetRecordByDate(ctx, childID, date)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, attendance.ErrAlreadyRecorded
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate attendance record ID")
		return nil, err
	}

	record := entity.AttendanceRecord{
		ID:           id,
		ChildID:      childID,
		Date:         date,
		Status:       req.Status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		RecordedBy:   recordedBy,
		CreatedAt:    time.Now(),
	}

	if err := repoClient.Attendance.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	resp := makeRecordResponse(record)
	return &resp, nil
}

func makeRecordResponse(record entity.AttendanceRecord) attendance.AttendanceRecordResponse {
	return attendance.AttendanceRecordResponse{
		ID:           record.ID,
		Date:         record.Date,
		Status:       record.Status,
		CheckInTime:  record.CheckInTime,
		CheckOutTime: record.CheckOutTime,
	}
}

// weekdaysBetween counts Monday-Friday days in (from, to], the days the
// daycare is open.
func weekdaysBetween(from, to time.Time) int {
	count := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
