package assistantService

import (
	"TinyTotsGolang/internal/api/assistant"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeTranslator struct {
	detectLang     string
	detectErr      error
	failAll        bool
	translateCalls int
}

func (f *fakeTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	if f.failAll || f.detectErr != nil {
		return "", errors.New("detect unavailable")
	}
	return f.detectLang, nil
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.translateCalls++
	if f.failAll {
		return "", errors.New("translate unavailable")
	}
	if targetLang == "en" {
		return text, nil
	}
	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}

type fakeExecutor struct {
	bookedPayloads  []assistant.AppointmentPayload
	attendanceCalls int
	bookErr         error
	attendanceErr   error
}

func (f *fakeExecutor) BookDoctorAppointment(ctx context.Context, actionCtx assistant.ActionContext, payload assistant.AppointmentPayload) error {
	f.bookedPayloads = append(f.bookedPayloads, payload)
	return f.bookErr
}

func (f *fakeExecutor) CheckAttendance(ctx context.Context, actionCtx assistant.ActionContext) error {
	f.attendanceCalls++
	return f.attendanceErr
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return fmt.Sprintf("01TEST%d", t.UnixNano()), nil
}

func (fakeUtils) ValidateAudioFile(file *multipart.FileHeader) error { return nil }

func newTestService(translator *fakeTranslator, executor *fakeExecutor) IAssistantService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, translator, executor, nil, nil, nil, nil, fakeUtils{})
}

func TestSubmitCommandBookDoctor(t *testing.T) {
	executor := &fakeExecutor{}
	svc := newTestService(&fakeTranslator{detectLang: "en"}, executor)

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{
		Text:          "Book doctor appointment for my child tomorrow at 10 AM",
		ActiveChildID: "child-1",
	})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if session.Status != assistant.StatusDone {
		t.Errorf("status = %q, want %q", session.Status, assistant.StatusDone)
	}
	if session.Intent != "book_doctor" {
		t.Errorf("intent = %q, want book_doctor", session.Intent)
	}

	if len(executor.bookedPayloads) != 1 {
		t.Fatalf("executor booked %d appointments, want 1", len(executor.bookedPayloads))
	}

	payload := executor.bookedPayloads[0]
	if payload.ChildID != "child-1" {
		t.Errorf("payload child = %q, want child-1", payload.ChildID)
	}
	if payload.AppointmentTime != "10:00" {
		t.Errorf("payload time = %q, want 10:00", payload.AppointmentTime)
	}

	wantDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if payload.AppointmentDate != wantDate {
		t.Errorf("payload date = %q, want %q", payload.AppointmentDate, wantDate)
	}

	wantMessage := fmt.Sprintf("Doctor appointment request submitted for 10:00 on %s.", wantDate)
	if session.ActionResult != wantMessage {
		t.Errorf("action result = %q, want %q", session.ActionResult, wantMessage)
	}
}

func TestSubmitCommandBookDoctorNoChildSelected(t *testing.T) {
	executor := &fakeExecutor{}
	svc := newTestService(&fakeTranslator{detectLang: "en"}, executor)

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{
		Text: "book a doctor appointment",
	})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if session.Status != assistant.StatusDone {
		t.Errorf("status = %q, want done", session.Status)
	}
	if session.ActionResult != "Please select a child first, then try again." {
		t.Errorf("unexpected action result %q", session.ActionResult)
	}
	if len(executor.bookedPayloads) != 0 {
		t.Errorf("executor was called with no child selected")
	}
}

func TestSubmitCommandGuidanceIntents(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"track my delivery", "Open 'My Orders' to track delivery status."},
		{"I want to pay the fee", "Open 'Billing' to pay fees."},
		{"book the bus", "Open 'Transport' to submit a transport request."},
		{"what is the weather", "Sorry, I did not understand your request. Try: 'Book doctor appointment for my child tomorrow at 10 AM'."},
	}

	for _, tt := range tests {
		svc := newTestService(&fakeTranslator{detectLang: "en"}, &fakeExecutor{})
		session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: tt.text})
		if err != nil {
			t.Fatalf("SubmitCommand(%q) returned error: %v", tt.text, err)
		}
		if session.ActionResult != tt.want {
			t.Errorf("SubmitCommand(%q) result = %q, want %q", tt.text, session.ActionResult, tt.want)
		}
	}
}

func TestSubmitCommandCheckAttendance(t *testing.T) {
	executor := &fakeExecutor{}
	svc := newTestService(&fakeTranslator{detectLang: "en"}, executor)

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{
		Text:          "check attendance for my child",
		ActiveChildID: "child-1",
	})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if executor.attendanceCalls != 1 {
		t.Errorf("attendance calls = %d, want 1", executor.attendanceCalls)
	}
	if session.ActionResult != "Attendance loaded successfully for your child." {
		t.Errorf("unexpected action result %q", session.ActionResult)
	}
}

func TestSubmitCommandCheckAttendanceNoChild(t *testing.T) {
	executor := &fakeExecutor{}
	svc := newTestService(&fakeTranslator{detectLang: "en"}, executor)

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{
		Text: "check attendance",
	})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if executor.attendanceCalls != 0 {
		t.Errorf("executor was called with no child selected")
	}
	if session.ActionResult != "Please select a child first, then ask to check attendance." {
		t.Errorf("unexpected action result %q", session.ActionResult)
	}
}

func TestSubmitCommandDuplicateTranscript(t *testing.T) {
	svc := newTestService(&fakeTranslator{detectLang: "en"}, &fakeExecutor{})

	if _, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay fees"}); err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}

	_, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay fees"})
	if !errors.Is(err, assistant.ErrDuplicateTranscript) {
		t.Errorf("second submit error = %v, want ErrDuplicateTranscript", err)
	}

	// A different transcript resets the guard, then the original is
	// accepted again.
	if _, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "track delivery"}); err != nil {
		t.Fatalf("third submit returned error: %v", err)
	}
	if _, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay fees"}); err != nil {
		t.Fatalf("fourth submit returned error: %v", err)
	}
}

func TestSubmitCommandEmptyTranscript(t *testing.T) {
	svc := newTestService(&fakeTranslator{detectLang: "en"}, &fakeExecutor{})

	_, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "   "})
	if !errors.Is(err, assistant.ErrEmptyTranscript) {
		t.Errorf("error = %v, want ErrEmptyTranscript", err)
	}
}

func TestSubmitCommandExecutorFailureFailsSession(t *testing.T) {
	executor := &fakeExecutor{bookErr: errors.New("database down")}
	svc := newTestService(&fakeTranslator{detectLang: "en"}, executor)

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{
		Text:          "book doctor tomorrow",
		ActiveChildID: "child-1",
	})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if session.Status != assistant.StatusFailed {
		t.Errorf("status = %q, want failed", session.Status)
	}
	if session.Error == nil || session.Error.Code != "ACTION_FAILED" {
		t.Errorf("session error = %+v, want ACTION_FAILED", session.Error)
	}
}

func TestSubmitCommandLocalizesResult(t *testing.T) {
	svc := newTestService(&fakeTranslator{detectLang: "es"}, &fakeExecutor{})

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay the fee"})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if session.DetectedLanguage != "es" {
		t.Errorf("detected language = %q, want es", session.DetectedLanguage)
	}
	if !strings.HasPrefix(session.LocalizedResult, "[es] ") {
		t.Errorf("localized result = %q, want [es] prefix", session.LocalizedResult)
	}
	if session.ActionResult != "Open 'Billing' to pay fees." {
		t.Errorf("action result = %q", session.ActionResult)
	}
}

func TestSubmitCommandEnglishSkipsPivotTranslation(t *testing.T) {
	translator := &fakeTranslator{detectLang: "en"}
	svc := newTestService(translator, &fakeExecutor{})

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay the fee"})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if translator.translateCalls != 0 {
		t.Errorf("translate calls = %d, want 0 for English input", translator.translateCalls)
	}
	if session.PivotText != "pay the fee" {
		t.Errorf("pivot text = %q, want raw transcript", session.PivotText)
	}
}

func TestSubmitCommandNonEnglishTranslatesBothWays(t *testing.T) {
	translator := &fakeTranslator{detectLang: "es"}
	svc := newTestService(translator, &fakeExecutor{})

	if _, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pagar la cuota"}); err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	// One call to reach the pivot language, one to localize the reply.
	if translator.translateCalls != 2 {
		t.Errorf("translate calls = %d, want 2 for non-English input", translator.translateCalls)
	}
}

func TestSubmitCommandTranslatorOutageDegradesSoftly(t *testing.T) {
	svc := newTestService(&fakeTranslator{failAll: true}, &fakeExecutor{})

	session, err := svc.SubmitCommand(context.Background(), "parent-1", assistant.CommandRequest{Text: "pay the fee"})
	if err != nil {
		t.Fatalf("SubmitCommand returned error: %v", err)
	}

	if session.Status != assistant.StatusDone {
		t.Errorf("status = %q, want done", session.Status)
	}
	if session.DetectedLanguage != "en" {
		t.Errorf("detected language = %q, want en fallback", session.DetectedLanguage)
	}
	if session.PivotText != "pay the fee" {
		t.Errorf("pivot text = %q, want raw transcript passthrough", session.PivotText)
	}
	if session.LocalizedResult != "Open 'Billing' to pay fees." {
		t.Errorf("localized result = %q", session.LocalizedResult)
	}
}

func TestDebugIntent(t *testing.T) {
	svc := newTestService(&fakeTranslator{detectLang: "en"}, &fakeExecutor{})

	resp := svc.DebugIntent("book doctor tomorrow at 3 pm")
	if resp.Intent != "book_doctor" {
		t.Errorf("intent = %q, want book_doctor", resp.Intent)
	}
	if resp.Slots["time"] == "" {
		t.Errorf("time slot missing from %v", resp.Slots)
	}
}
