package nlp

import (
	"regexp"
	"strings"
)

var timeSlotPattern = regexp.MustCompile(`tomorrow|today|\d{1,2}(:\d{2})?\s*(am|pm)?`)

// intentRule pairs an intent with the substrings that trigger it. Rules are
// evaluated in order, first match wins, so a command mentioning both "doctor"
// and "fee" books a doctor.
type intentRule struct {
	intent   Intent
	keywords []string
}

var intentRules = []intentRule{
	{IntentBookDoctor, []string{"doctor", "appointment"}},
	{IntentCheckAttendance, []string{"attendance"}},
	{IntentTrackDelivery, []string{"delivery", "track"}},
	{IntentPayFees, []string{"pay", "fee"}},
	{IntentBookTransport, []string{"transport", "bus"}},
}

// ExtractIntent classifies pivot-language text with ordered keyword matching.
// Only book_doctor carries a slot: the first time-like expression in the text
// (empty string when absent).
func ExtractIntent(text string) ExtractionResult {
	lower := strings.ToLower(text)

	for _, rule := range intentRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}

		slots := map[string]string{}
		if rule.intent == IntentBookDoctor {
			slots[SlotTime] = timeSlotPattern.FindString(lower)
		}

		return ExtractionResult{Intent: rule.intent, Slots: slots}
	}

	return ExtractionResult{Intent: IntentUnknown, Slots: map[string]string{}}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
