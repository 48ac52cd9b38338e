package assistant

import "context"

// AppointmentPayload is what the dispatcher hands the executor when a
// doctor booking intent carries enough information to act on.
type AppointmentPayload struct {
	ChildID         string
	AppointmentDate string
	AppointmentTime string
	Reason          string
	AppointmentType string
	IsEmergency     bool
}

// ActionExecutor is the boundary between the command pipeline and the
// domains it drives. Implementations run in-process against the
// appointment and attendance services.
type ActionExecutor interface {
	BookDoctorAppointment(ctx context.Context, actionCtx ActionContext, payload AppointmentPayload) error
	CheckAttendance(ctx context.Context, actionCtx ActionContext) error
}
