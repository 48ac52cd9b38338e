package appointmentRepository

import (
	"TinyTotsGolang/internal/api/appointment"
	"TinyTotsGolang/internal/entity"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sirupsen/logrus"
)

type AppointmentDB struct {
	ID              sql.NullString `db:"id"`
	ChildID         sql.NullString `db:"child_id"`
	ParentID        sql.NullString `db:"parent_id"`
	AppointmentDate sql.NullString `db:"appointment_date"`
	AppointmentTime sql.NullString `db:"appointment_time"`
	Reason          sql.NullString `db:"reason"`
	AppointmentType sql.NullString `db:"appointment_type"`
	IsEmergency     sql.NullBool   `db:"is_emergency"`
	Status          sql.NullString `db:"status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *appointmentRepository) CreateAppointment(ctx context.Context, apt entity.Appointment) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":               apt.ID,
		"child_id":         apt.ChildID,
		"parent_id":        apt.ParentID,
		"appointment_date": apt.AppointmentDate,
		"appointment_time": apt.AppointmentTime,
		"reason":           apt.Reason,
		"appointment_type": apt.AppointmentType,
		"is_emergency":     apt.IsEmergency,
		"status":           apt.Status,
		"created_at":       apt.CreatedAt,
		"updated_at":       apt.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAppointment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAppointment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating appointment")
		return err
	}

	return nil
}

func (r *appointmentRepository) GetAppointmentByID(ctx context.Context, id string) (entity.Appointment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var aptDB AppointmentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetAppointmentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentByID named query preparation err")
		return entity.Appointment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&aptDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetAppointmentByID no rows found")
			return entity.Appointment{}, appointment.ErrAppointmentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentByID execution err")
		return entity.Appointment{}, err
	}

	return r.makeAppointment(aptDB), nil
}

func (r *appointmentRepository) GetAppointmentsByParentID(ctx context.Context, parentID string, limit, offset int) ([]entity.Appointment, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var appointmentsList []AppointmentDB
	var total int

	countArgsKV := map[string]interface{}{
		"parent_id": parentID,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountAppointmentsByParentID, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAppointmentsByParentID named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAppointmentsByParentID execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"parent_id": parentID,
		"limit":     limit,
		"offset":    offset,
	}

	query, args, err := sqlx.Named(queryGetAppointmentsByParentID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentsByParentID named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &appointmentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentsByParentID execution err")
		return nil, 0, err
	}

	var appointments []entity.Appointment
	for _, aptDB := range appointmentsList {
		appointments = append(appointments, r.makeAppointment(aptDB))
	}

	return appointments, total, nil
}

func (r *appointmentRepository) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAppointmentStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAppointmentStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAppointmentStatus execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAppointmentStatus rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpdateAppointmentStatus no rows affected")
		return appointment.ErrAppointmentNotFound
	}

	return nil
}

func (r *appointmentRepository) makeAppointment(aptDB AppointmentDB) entity.Appointment {
	return entity.Appointment{
		ID:              aptDB.ID.String,
		ChildID:         aptDB.ChildID.String,
		ParentID:        aptDB.ParentID.String,
		AppointmentDate: aptDB.AppointmentDate.String,
		AppointmentTime: aptDB.AppointmentTime.String,
		Reason:          aptDB.Reason.String,
		AppointmentType: aptDB.AppointmentType.String,
		IsEmergency:     aptDB.IsEmergency.Bool,
		Status:          aptDB.Status.String,
		CreatedAt:       aptDB.CreatedAt,
		UpdatedAt:       aptDB.UpdatedAt,
	}
}
