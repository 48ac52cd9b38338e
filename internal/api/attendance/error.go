package attendance

import "TinyTotsGolang/pkg/response"

var (
	ErrChildNotFound   = response.NewError(404, "child not found")
	ErrChildNotOwned   = response.NewError(403, "child does not belong to user")
	ErrInvalidDate     = response.NewError(400, "invalid attendance date")
	ErrAlreadyRecorded = response.NewError(409, "attendance already recorded for date")
)
