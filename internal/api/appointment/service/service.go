package appointmentService

import (
	"TinyTotsGolang/internal/api/appointment"
	appointmentRepository "TinyTotsGolang/internal/api/appointment/repository"
	"TinyTotsGolang/pkg/utils"
	"TinyTotsGolang/pkg/whatsapp"
	"context"

	"github.com/sirupsen/logrus"
)

type IAppointmentService interface {
	CreateAppointment(ctx context.Context, parentID string, req appointment.CreateAppointmentRequest) (*appointment.AppointmentResponse, error)
	GetAppointments(ctx context.Context, parentID string, page, limit int) (*appointment.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, parentID, id string) (*appointment.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, parentID, id string) (*appointment.AppointmentResponse, error)
}

type appointmentService struct {
	log             *logrus.Logger
	appointmentRepo appointmentRepository.Repository
	utils           utils.IUtils
	whatsappSender  whatsapp.IWhatsappSender
}

func New(
	log *logrus.Logger,
	appointmentRepo appointmentRepository.Repository,
	utils utils.IUtils,
	whatsappSender whatsapp.IWhatsappSender,
) IAppointmentService {
	return &appointmentService{
		log:             log,
		appointmentRepo: appointmentRepo,
		utils:           utils,
		whatsappSender:  whatsappSender,
	}
}
