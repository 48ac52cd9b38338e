package attendanceHandler

import (
	attendanceService "TinyTotsGolang/internal/api/attendance/service"
	"TinyTotsGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AttendanceHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	attendanceService attendanceService.IAttendanceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as attendanceService.IAttendanceService,
) *AttendanceHandler {
	return &AttendanceHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		attendanceService: as,
	}
}

func (h *AttendanceHandler) Start(srv fiber.Router) {
	children := srv.Group("/children")

	children.Use(h.middleware.NewTokenMiddleware)

	children.Get("/", h.ListChildren)
	children.Get("/:id/attendance", h.GetAttendanceSummary)
	children.Post("/:id/attendance", h.RecordAttendance)
}
