package assistant

import "TinyTotsGolang/pkg/response"

var (
	ErrEmptyTranscript     = response.NewError(400, "transcript is empty")
	ErrDuplicateTranscript = response.NewError(409, "transcript already processed")
	ErrInvalidAudioFile    = response.NewError(400, "invalid audio file")
	ErrTranscriptionFailed = response.NewError(500, "failed to transcribe audio")
)
