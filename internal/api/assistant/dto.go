package assistant

import (
	"TinyTotsGolang/pkg/nlp"
	"time"
)

const (
	StatusIdle       = "idle"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

type CommandRequest struct {
	Text          string `json:"text" validate:"required,min=1,max=500"`
	ActiveChildID string `json:"active_child_id,omitempty"`
}

// ActionContext carries the caller identity and UI selection into the
// action executors.
type ActionContext struct {
	ParentID      string
	ActiveChildID string
}

type SessionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CommandSession is the full trace of one transcript through the pipeline.
// Every stage writes its output here so the client can render intermediate
// state alongside the final reply.
type CommandSession struct {
	ID               string            `json:"id"`
	RawTranscript    string            `json:"raw_transcript"`
	DetectedLanguage string            `json:"detected_language"`
	PivotText        string            `json:"pivot_text"`
	Intent           string            `json:"intent"`
	Slots            map[string]string `json:"slots,omitempty"`
	ActionResult     string            `json:"action_result"`
	LocalizedResult  string            `json:"localized_result"`
	AudioURL         string            `json:"audio_url,omitempty"`
	Status           string            `json:"status"`
	Error            *SessionError     `json:"error,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type IntentDebugResponse struct {
	Text   string            `json:"text"`
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots,omitempty"`
}

func NewIntentDebugResponse(text string, result nlp.ExtractionResult) IntentDebugResponse {
	return IntentDebugResponse{
		Text:   text,
		Intent: result.Intent.String(),
		Slots:  result.Slots,
	}
}
