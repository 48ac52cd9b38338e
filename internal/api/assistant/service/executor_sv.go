package assistantService

import (
	"TinyTotsGolang/internal/api/appointment"
	appointmentService "TinyTotsGolang/internal/api/appointment/service"
	attendanceService "TinyTotsGolang/internal/api/attendance/service"
	"TinyTotsGolang/internal/api/assistant"
	"context"
)

// domainExecutor drives the appointment and attendance services directly.
// The pipeline stays unaware of which domain backs each intent.
type domainExecutor struct {
	appointmentService appointmentService.IAppointmentService
	attendanceService  attendanceService.IAttendanceService
}

func NewDomainExecutor(
	as appointmentService.IAppointmentService,
	ats attendanceService.IAttendanceService,
) assistant.ActionExecutor {
	return &domainExecutor{
		appointmentService: as,
		attendanceService:  ats,
	}
}

func (e *domainExecutor) BookDoctorAppointment(ctx context.Context, actionCtx assistant.ActionContext, payload assistant.AppointmentPayload) error {
	req := appointment.CreateAppointmentRequest{
		ChildID:         payload.ChildID,
		AppointmentDate: payload.AppointmentDate,
		AppointmentTime: payload.AppointmentTime,
		Reason:          payload.Reason,
		AppointmentType: payload.AppointmentType,
		IsEmergency:     payload.IsEmergency,
	}

	_, err := e.appointmentService.CreateAppointment(ctx, actionCtx.ParentID, req)
	return err
}

func (e *domainExecutor) CheckAttendance(ctx context.Context, actionCtx assistant.ActionContext) error {
	_, err := e.attendanceService.GetAttendanceSummary(ctx, actionCtx.ParentID, actionCtx.ActiveChildID)
	return err
}
