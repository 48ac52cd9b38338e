package attendanceService

import (
	"TinyTotsGolang/internal/api/attendance"
	attendanceRepository "TinyTotsGolang/internal/api/attendance/repository"
	"TinyTotsGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IAttendanceService interface {
	GetAttendanceSummary(ctx context.Context, parentID, childID string) (*attendance.AttendanceSummaryResponse, error)
	ListChildren(ctx context.Context, parentID string) (*attendance.ChildListResponse, error)
	RecordAttendance(ctx context.Context, recordedBy, childID string, req attendance.RecordAttendanceRequest) (*attendance.AttendanceRecordResponse, error)
}

type attendanceService struct {
	log            *logrus.Logger
	attendanceRepo attendanceRepository.Repository
	utils          utils.IUtils
}

func New(log *logrus.Logger, attendanceRepo attendanceRepository.Repository, utils utils.IUtils) IAttendanceService {
	return &attendanceService{
		log:            log,
		attendanceRepo: attendanceRepo,
		utils:          utils,
	}
}
