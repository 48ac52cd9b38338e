package nlp

import "testing"

func TestExtractIntent(t *testing.T) {
	cases := []struct {
		input string
		want  Intent
	}{
		{"Book doctor appointment for my child tomorrow at 10 AM", IntentBookDoctor},
		{"I NEED A DOCTOR", IntentBookDoctor},
		{"schedule an appointment", IntentBookDoctor},
		{"check my attendance", IntentCheckAttendance},
		{"track my delivery", IntentTrackDelivery},
		{"where is the delivery", IntentTrackDelivery},
		{"pay the monthly fee", IntentPayFees},
		{"book the bus for monday", IntentBookTransport},
		{"arrange transport", IntentBookTransport},
		{"hello there", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tc := range cases {
		got := ExtractIntent(tc.input)
		if got.Intent != tc.want {
			t.Errorf("ExtractIntent(%q).Intent = %q, want %q", tc.input, got.Intent, tc.want)
		}
	}
}

func TestExtractIntentOrdering(t *testing.T) {
	// "doctor" outranks "fee" because rules are evaluated in priority order.
	got := ExtractIntent("pay the doctor fee")
	if got.Intent != IntentBookDoctor {
		t.Errorf("expected book_doctor to win over pay_fees, got %q", got.Intent)
	}

	// "track" outranks "pay" the same way.
	got = ExtractIntent("track the payment")
	if got.Intent != IntentTrackDelivery {
		t.Errorf("expected track_delivery to win over pay_fees, got %q", got.Intent)
	}
}

func TestExtractIntentTimeSlot(t *testing.T) {
	got := ExtractIntent("book doctor appointment tomorrow at 10 am")
	if got.Slots[SlotTime] != "tomorrow" {
		t.Errorf("expected first time-like match %q, got %q", "tomorrow", got.Slots[SlotTime])
	}

	got = ExtractIntent("doctor at 10:30 pm")
	if got.Slots[SlotTime] != "10:30 pm" {
		t.Errorf("expected %q, got %q", "10:30 pm", got.Slots[SlotTime])
	}

	got = ExtractIntent("see the doctor")
	if slot, ok := got.Slots[SlotTime]; !ok || slot != "" {
		t.Errorf("expected empty time slot, got %q (present=%v)", slot, ok)
	}

	// No slot extraction for other intents.
	got = ExtractIntent("check attendance tomorrow")
	if _, ok := got.Slots[SlotTime]; ok {
		t.Error("check_attendance should not extract a time slot")
	}
}
