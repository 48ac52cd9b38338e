package handlerUtil

import (
	"TinyTotsGolang/internal/api/appointment"
	"TinyTotsGolang/internal/api/assistant"
	"TinyTotsGolang/internal/api/attendance"
	"TinyTotsGolang/pkg/log"
	"TinyTotsGolang/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Assistant domain errors
	if errors.Is(err, assistant.ErrDuplicateTranscript) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Duplicate transcript rejected")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "This transcript was already processed",
			"code":    "DUPLICATE_TRANSCRIPT",
		})
	}

	if errors.Is(err, assistant.ErrEmptyTranscript) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Empty transcript rejected")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Transcript must not be empty",
			"code":    "EMPTY_TRANSCRIPT",
		})
	}

	if errors.Is(err, assistant.ErrInvalidAudioFile) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid audio file")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid or unsupported audio file",
			"code":    "INVALID_AUDIO_FILE",
		})
	}

	if errors.Is(err, assistant.ErrTranscriptionFailed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Transcription failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to transcribe audio",
			"code":    "TRANSCRIPTION_FAILED",
		})
	}

	// Appointment domain errors
	if errors.Is(err, appointment.ErrChildNotFound) || errors.Is(err, attendance.ErrChildNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Child not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Child not found",
			"code":    "CHILD_NOT_FOUND",
		})
	}

	if errors.Is(err, appointment.ErrChildNotOwned) || errors.Is(err, attendance.ErrChildNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Child does not belong to user")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Child does not belong to user",
			"code":    "CHILD_NOT_OWNED",
		})
	}

	if errors.Is(err, appointment.ErrAppointmentNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Appointment not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
			"code":    "APPOINTMENT_NOT_FOUND",
		})
	}

	if errors.Is(err, appointment.ErrAppointmentNotOwned) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Appointment does not belong to user")
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Appointment does not belong to user",
			"code":    "APPOINTMENT_NOT_OWNED",
		})
	}

	if errors.Is(err, appointment.ErrNotCancellable) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Appointment can no longer be cancelled")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Appointment can no longer be cancelled",
			"code":    "NOT_CANCELLABLE",
		})
	}

	if errors.Is(err, attendance.ErrAlreadyRecorded) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Attendance already recorded")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Attendance already recorded for this date",
			"code":    "ATTENDANCE_ALREADY_RECORDED",
		})
	}

	if errors.Is(err, appointment.ErrInvalidDateFormat) || errors.Is(err, appointment.ErrInvalidTimeFormat) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid appointment schedule")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid appointment date or time",
			"code":    "INVALID_SCHEDULE",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
