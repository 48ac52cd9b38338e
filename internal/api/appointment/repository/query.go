package appointmentRepository

const (
	queryCreateAppointment = `
		INSERT INTO appointments (
			id, child_id, parent_id, appointment_date, appointment_time,
			reason, appointment_type, is_emergency, status,
			created_at, updated_at
		) VALUES (
			:id, :child_id, :parent_id, :appointment_date, :appointment_time,
			:reason, :appointment_type, :is_emergency, :status,
			:created_at, :updated_at
		)
	`

	queryGetAppointmentByID = `
		SELECT
			id, child_id, parent_id, appointment_date, appointment_time,
			reason, appointment_type, is_emergency, status,
			created_at, updated_at
		FROM appointments
		WHERE id = :id
	`

	queryGetAppointmentsByParentID = `
		SELECT
			id, child_id, parent_id, appointment_date, appointment_time,
			reason, appointment_type, is_emergency, status,
			created_at, updated_at
		FROM appointments
		WHERE parent_id = :parent_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAppointmentsByParentID = `
		SELECT COUNT(*)
		FROM appointments
		WHERE parent_id = :parent_id
	`

	queryUpdateAppointmentStatus = `
		UPDATE appointments
		SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryGetChildByID = `
		SELECT
			id, parent_id, first_name, last_name, date_of_birth,
			group_name, created_at, updated_at
		FROM children
		WHERE id = :id
	`
)
