package nlp

// Intent is the closed set of commands the assistant understands.
type Intent string

const (
	IntentBookDoctor      Intent = "book_doctor"
	IntentCheckAttendance Intent = "check_attendance"
	IntentTrackDelivery   Intent = "track_delivery"
	IntentPayFees         Intent = "pay_fees"
	IntentBookTransport   Intent = "book_transport"
	IntentUnknown         Intent = "unknown"
)

func (i Intent) String() string {
	return string(i)
}

// SlotTime is the only slot the extractor currently fills, and only for
// book_doctor commands.
const SlotTime = "time"

type ExtractionResult struct {
	Intent Intent            `json:"intent"`
	Slots  map[string]string `json:"slots"`
}
