package appointmentService

import (
	"TinyTotsGolang/internal/api/appointment"
	"TinyTotsGolang/internal/entity"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOfDay   = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func (s *appointmentService) CreateAppointment(ctx context.Context, parentID string, req appointment.CreateAppointmentRequest) (*appointment.AppointmentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !datePattern.MatchString(req.AppointmentDate) {
		return nil, appointment.ErrInvalidDateFormat
	}
	if !timeOfDay.MatchString(req.AppointmentTime) {
		return nil, appointment.ErrInvalidTimeFormat
	}

	repoClient, err := s.appointmentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	child, err := repoClient.Children.GetChildByID(ctx, req.ChildID)
	if err != nil {
		return nil, err
	}

	if child.ParentID != parentID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"child_id":   req.ChildID,
			"parent_id":  parentID,
		}).Warn("Child does not belong to requesting parent")
		return nil, appointment.ErrChildNotOwned
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate appointment ID")
		return nil, err
	}

	now := time.Now()
	apt := entity.Appointment{
		ID:              id,
		ChildID:         req.ChildID,
		ParentID:        parentID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		AppointmentType: req.AppointmentType,
		IsEmergency:     req.IsEmergency,
		Status:          entity.AppointmentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repoClient.Appointments.CreateAppointment(ctx, apt); err != nil {
		return nil, err
	}

	childName := fmt.Sprintf("%s %s", child.FirstName, child.LastName)
	s.notifyStaff(requestID, childName, apt)

	return &appointment.AppointmentResponse{
		ID:              apt.ID,
		ChildID:         apt.ChildID,
		ChildName:       childName,
		AppointmentDate: apt.AppointmentDate,
		AppointmentTime: apt.AppointmentTime,
		Reason:          apt.Reason,
		AppointmentType: apt.AppointmentType,
		IsEmergency:     apt.IsEmergency,
		Status:          apt.Status,
		CreatedAt:       apt.CreatedAt,
	}, nil
}

func (s *appointmentService) GetAppointments(ctx context.Context, parentID string, page, limit int) (*appointment.AppointmentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.appointmentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	offset := (page - 1) * limit
	appointments, total, err := repoClient.Appointments.GetAppointmentsByParentID(ctx, parentID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]appointment.AppointmentResponse, 0, len(appointments))
	for _, apt := range appointments {
		responses = append(responses, appointment.AppointmentResponse{
			ID:              apt.ID,
			ChildID:         apt.ChildID,
			AppointmentDate: apt.AppointmentDate,
			AppointmentTime: apt.AppointmentTime,
			Reason:          apt.Reason,
			AppointmentType: apt.AppointmentType,
			IsEmergency:     apt.IsEmergency,
			Status:          apt.Status,
			CreatedAt:       apt.CreatedAt,
		})
	}

	return &appointment.AppointmentListResponse{
		Appointments: responses,
		Total:        total,
	}, nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, parentID, id string) (*appointment.AppointmentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.appointmentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	apt, err := repoClient.Appointments.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if apt.ParentID != parentID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"appointment_id": id,
			"parent_id":      parentID,
		}).Warn("Appointment does not belong to requesting parent")
		return nil, appointment.ErrAppointmentNotOwned
	}

	return makeAppointmentResponse(apt), nil
}

// CancelAppointment lets a parent withdraw their own request. Only pending
// and confirmed appointments can still be cancelled.
func (s *appointmentService) CancelAppointment(ctx context.Context, parentID, id string) (*appointment.AppointmentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.appointmentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	apt, err := repoClient.Appointments.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if apt.ParentID != parentID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"appointment_id": id,
			"parent_id":      parentID,
		}).Warn("Appointment does not belong to requesting parent")
		return nil, appointment.ErrAppointmentNotOwned
	}

	if apt.Status != entity.AppointmentStatusPending && apt.Status != entity.AppointmentStatusConfirmed {
		return nil, appointment.ErrNotCancellable
	}

	if err := repoClient.Appointments.UpdateAppointmentStatus(ctx, id, entity.AppointmentStatusCancelled); err != nil {
		return nil, err
	}

	apt.Status = entity.AppointmentStatusCancelled
	return makeAppointmentResponse(apt), nil
}

func makeAppointmentResponse(apt entity.Appointment) *appointment.AppointmentResponse {
	return &appointment.AppointmentResponse{
		ID:              apt.ID,
		ChildID:         apt.ChildID,
		AppointmentDate: apt.AppointmentDate,
		AppointmentTime: apt.AppointmentTime,
		Reason:          apt.Reason,
		AppointmentType: apt.AppointmentType,
		IsEmergency:     apt.IsEmergency,
		Status:          apt.Status,
		CreatedAt:       apt.CreatedAt,
	}
}

// notifyStaff pushes the new request to the daycare staff WhatsApp number.
// Delivery failures must not fail the booking, so this runs detached.
func (s *appointmentService) notifyStaff(requestID, childName string, apt entity.Appointment) {
	if s.whatsappSender == nil {
		return
	}

	staffNumber := os.Getenv("DAYCARE_WHATSAPP_NUMBER")
	if staffNumber == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.whatsappSender.SendAppointmentConfirmation(ctx, staffNumber, childName, apt.AppointmentDate, apt.AppointmentTime); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"appointment_id": apt.ID,
				"error":          err.Error(),
			}).Warn("Failed to send WhatsApp notification")
		}
	}()
}
