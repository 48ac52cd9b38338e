package appointment

import "TinyTotsGolang/pkg/response"

var (
	ErrChildNotFound       = response.NewError(404, "child not found")
	ErrChildNotOwned       = response.NewError(403, "child does not belong to user")
	ErrAppointmentNotFound = response.NewError(404, "appointment not found")
	ErrAppointmentNotOwned = response.NewError(403, "appointment does not belong to user")
	ErrNotCancellable      = response.NewError(400, "appointment can no longer be cancelled")
	ErrInvalidDateFormat   = response.NewError(400, "invalid appointment date")
	ErrInvalidTimeFormat   = response.NewError(400, "invalid appointment time")
)
