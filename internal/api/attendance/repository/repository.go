package attendanceRepository

import (
	"TinyTotsGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Attendance: &attendanceRepository{q: sqlExecutor, log: r.log},
		Children:   &childRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Attendance interface {
		GetRecordByDate(ctx context.Context, childID, date string) (entity.AttendanceRecord, bool, error)
		GetRecordsSince(ctx context.Context, childID, sinceDate string) ([]entity.AttendanceRecord, error)
		CreateRecord(ctx context.Context, record entity.AttendanceRecord) error
	}

	Children interface {
		GetChildByID(ctx context.Context, id string) (entity.Child, error)
		GetChildrenByParentID(ctx context.Context, parentID string) ([]entity.Child, error)
	}

	Commit   func() error
	Rollback func() error
}

type attendanceRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type childRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
