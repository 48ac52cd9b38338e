package attendanceRepository

import (
	"TinyTotsGolang/internal/entity"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sirupsen/logrus"
)

type AttendanceRecordDB struct {
	ID           sql.NullString `db:"id"`
	ChildID      sql.NullString `db:"child_id"`
	Date         sql.NullString `db:"date"`
	Status       sql.NullString `db:"status"`
	CheckInTime  sql.NullString `db:"check_in_time"`
	CheckOutTime sql.NullString `db:"check_out_time"`
	RecordedBy   sql.NullString `db:"recorded_by"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *attendanceRepository) GetRecordByDate(ctx context.Context, childID, date string) (entity.AttendanceRecord, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var recordDB AttendanceRecordDB

	argsKV := map[string]interface{}{
		"child_id": childID,
		"date":     date,
	}

	query, args, err := sqlx.Named(queryGetRecordByDate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecordByDate named query preparation err")
		return entity.AttendanceRecord{}, false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&recordDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AttendanceRecord{}, false, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecordByDate execution err")
		return entity.AttendanceRecord{}, false, err
	}

	return r.makeRecord(recordDB), true, nil
}

func (r *attendanceRepository) GetRecordsSince(ctx context.Context, childID, sinceDate string) ([]entity.AttendanceRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var recordsList []AttendanceRecordDB

	argsKV := map[string]interface{}{
		"child_id":   childID,
		"since_date": sinceDate,
	}

	query, args, err := sqlx.Named(queryGetRecordsSince, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecordsSince named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &recordsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecordsSince execution err")
		return nil, err
	}

	var records []entity.AttendanceRecord
	for _, recordDB := range recordsList {
		records = append(records, r.makeRecord(recordDB))
	}

	return records, nil
}

func (r *attendanceRepository) CreateRecord(ctx context.Context, record entity.AttendanceRecord) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":             record.ID,
		"child_id":       record.ChildID,
		"date":           record.Date,
		"status":         record.Status,
		"check_in_time":  record.CheckInTime,
		"check_out_time": record.CheckOutTime,
		"recorded_by":    record.RecordedBy,
		"created_at":     record.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateRecord, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateRecord named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating attendance record")
		return err
	}

	return nil
}

func (r *attendanceRepository) makeRecord(recordDB AttendanceRecordDB) entity.AttendanceRecord {
	return entity.AttendanceRecord{
		ID:           recordDB.ID.String,
		ChildID:      recordDB.ChildID.String,
		Date:         recordDB.Date.String,
		Status:       recordDB.Status.String,
		CheckInTime:  recordDB.CheckInTime.String,
		CheckOutTime: recordDB.CheckOutTime.String,
		RecordedBy:   recordDB.RecordedBy.String,
		CreatedAt:    recordDB.CreatedAt,
	}
}
