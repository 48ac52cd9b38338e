package assistantService

import (
	"TinyTotsGolang/internal/api/assistant"
	"TinyTotsGolang/pkg/nlp"
	"context"
	"fmt"
)

const (
	msgSelectChildForDoctor     = "Please select a child first, then try again."
	msgSelectChildForAttendance = "Please select a child first, then ask to check attendance."
	msgAttendanceLoaded         = "Attendance loaded successfully for your child."
	msgTrackDelivery            = "Open 'My Orders' to track delivery status."
	msgPayFees                  = "Open 'Billing' to pay fees."
	msgBookTransport            = "Open 'Transport' to submit a transport request."
	msgNotUnderstood            = "Sorry, I did not understand your request. Try: 'Book doctor appointment for my child tomorrow at 10 AM'."

	defaultAppointmentReason = "Requested via Voice Assistant"
)

// dispatch turns an extracted intent into an action and a reply message.
// Unknown intents and missing preconditions are normal outcomes with
// guidance messages; only executor failures return an error.
func (s *assistantService) dispatch(ctx context.Context, actionCtx assistant.ActionContext, extraction nlp.ExtractionResult, pivotText string) (string, error) {
	switch extraction.Intent {
	case nlp.IntentBookDoctor:
		return s.dispatchBookDoctor(ctx, actionCtx, extraction, pivotText)

	case nlp.IntentCheckAttendance:
		if actionCtx.ActiveChildID == "" {
			return msgSelectChildForAttendance, nil
		}
		if err := s.executor.CheckAttendance(ctx, actionCtx); err != nil {
			return "", err
		}
		return msgAttendanceLoaded, nil

	case nlp.IntentTrackDelivery:
		return msgTrackDelivery, nil

	case nlp.IntentPayFees:
		return msgPayFees, nil

	case nlp.IntentBookTransport:
		return msgBookTransport, nil

	default:
		return msgNotUnderstood, nil
	}
}

func (s *assistantService) dispatchBookDoctor(ctx context.Context, actionCtx assistant.ActionContext, extraction nlp.ExtractionResult, pivotText string) (string, error) {
	if actionCtx.ActiveChildID == "" {
		return msgSelectChildForDoctor, nil
	}

	// The time slot drives the date ("tomorrow" lands there), but it may
	// hold a dateword with no clock digits, in which case the clock time
	// comes from the full pivot text instead.
	slotValue := extraction.Slots[nlp.SlotTime]
	dateSource := slotValue
	if dateSource == "" {
		dateSource = pivotText
	}

	timeSource := slotValue
	if !nlp.HasClockTime(timeSource) {
		timeSource = pivotText
	}

	payload := assistant.AppointmentPayload{
		ChildID:         actionCtx.ActiveChildID,
		AppointmentDate: nlp.ParseDate(dateSource),
		AppointmentTime: nlp.ParseTime(timeSource),
		Reason:          defaultAppointmentReason,
		AppointmentType: "onsite",
		IsEmergency:     false,
	}

	if err := s.executor.BookDoctorAppointment(ctx, actionCtx, payload); err != nil {
		return "", err
	}

	return fmt.Sprintf("Doctor appointment request submitted for %s on %s.", payload.AppointmentTime, payload.AppointmentDate), nil
}
