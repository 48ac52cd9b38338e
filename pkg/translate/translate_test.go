package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeTranslator struct {
	detectLang string
	detectErr  error
	translated string
	translErr  error
}

func (f *fakeTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	return f.detectLang, f.detectErr
}

func (f *fakeTranslator) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	if f.translErr != nil {
		return "", f.translErr
	}
	return f.translated, nil
}

func TestSoftFailDetectionFallsBackToPivot(t *testing.T) {
	sf := NewSoftFail(&fakeTranslator{detectErr: errors.New("service down")}, logrus.New())

	lang, err := sf.DetectLanguage(context.Background(), "hola")
	if err != nil {
		t.Fatalf("soft-fail detection returned error: %v", err)
	}
	if lang != PivotLanguage {
		t.Errorf("expected fallback to %q, got %q", PivotLanguage, lang)
	}
}

func TestSoftFailDetectionPassesThroughResult(t *testing.T) {
	sf := NewSoftFail(&fakeTranslator{detectLang: "ml"}, logrus.New())

	lang, err := sf.DetectLanguage(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang != "ml" {
		t.Errorf("expected %q, got %q", "ml", lang)
	}
}

func TestSoftFailTranslateIdentityOnError(t *testing.T) {
	sf := NewSoftFail(&fakeTranslator{translErr: errors.New("quota exceeded")}, logrus.New())

	got, err := sf.Translate(context.Background(), "original text", "hi")
	if err != nil {
		t.Fatalf("soft-fail translate returned error: %v", err)
	}
	if got != "original text" {
		t.Errorf("expected identity passthrough, got %q", got)
	}
}

func TestUnconfiguredClientErrors(t *testing.T) {
	// No GOOGLE_TRANSLATE_API_KEY in the test environment: the raw client
	// must refuse so the soft-fail wrapper owns the default policy.
	t.Setenv("GOOGLE_TRANSLATE_API_KEY", "")
	client := New(logrus.New(), nil)

	if _, err := client.DetectLanguage(context.Background(), "text"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := client.Translate(context.Background(), "text", "en"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
