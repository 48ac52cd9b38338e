package attendanceRepository

import (
	"TinyTotsGolang/internal/api/attendance"
	"TinyTotsGolang/internal/entity"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sirupsen/logrus"
)

type ChildDB struct {
	ID          sql.NullString `db:"id"`
	ParentID    sql.NullString `db:"parent_id"`
	FirstName   sql.NullString `db:"first_name"`
	LastName    sql.NullString `db:"last_name"`
	DateOfBirth sql.NullString `db:"date_of_birth"`
	GroupName   sql.NullString `db:"group_name"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *childRepository) GetChildByID(ctx context.Context, id string) (entity.Child, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var childDB ChildDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetChildByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChildByID named query preparation err")
		return entity.Child{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&childDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetChildByID no rows found")
			return entity.Child{}, attendance.ErrChildNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChildByID execution err")
		return entity.Child{}, err
	}

	return r.makeChild(childDB), nil
}

func (r *childRepository) GetChildrenByParentID(ctx context.Context, parentID string) ([]entity.Child, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var childrenList []ChildDB

	argsKV := map[string]interface{}{
		"parent_id": parentID,
	}

	query, args, err := sqlx.Named(queryGetChildrenByParentID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChildrenByParentID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &childrenList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChildrenByParentID execution err")
		return nil, err
	}

	var children []entity.Child
	for _, childDB := range childrenList {
		children = append(children, r.makeChild(childDB))
	}

	return children, nil
}

func (r *childRepository) makeChild(childDB ChildDB) entity.Child {
	return entity.Child{
		ID:          childDB.ID.String,
		ParentID:    childDB.ParentID.String,
		FirstName:   childDB.FirstName.String,
		LastName:    childDB.LastName.String,
		DateOfBirth: childDB.DateOfBirth.String,
		GroupName:   childDB.GroupName.String,
		CreatedAt:   childDB.CreatedAt,
		UpdatedAt:   childDB.UpdatedAt,
	}
}
