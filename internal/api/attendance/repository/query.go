package attendanceRepository

const (
	queryGetRecordByDate = `
		SELECT
			id, child_id, date, status, check_in_time,
			check_out_time, recorded_by, created_at
		FROM attendance_records
		WHERE child_id = :child_id AND date = :date
	`

	queryGetRecordsSince = `
		SELECT
			id, child_id, date, status, check_in_time,
			check_out_time, recorded_by, created_at
		FROM attendance_records
		WHERE child_id = :child_id AND date >= :since_date
		ORDER BY date DESC
	`

	queryCreateRecord = `
		INSERT INTO attendance_records (
			id, child_id, date, status, check_in_time,
			check_out_time, recorded_by, created_at
		) VALUES (
			:id, :child_id, :date, :status, :check_in_time,
			:check_out_time, :recorded_by, :created_at
		)
	`

	queryGetChildByID = `
		SELECT
			id, parent_id, first_name, last_name, date_of_birth,
			group_name, created_at, updated_at
		FROM children
		WHERE id = :id
	`

	queryGetChildrenByParentID = `
		SELECT
			id, parent_id, first_name, last_name, date_of_birth,
			group_name, created_at, updated_at
		FROM children
		WHERE parent_id = :parent_id
		ORDER BY first_name ASC
	`
)
