package translate

import (
	"context"

	"github.com/sirupsen/logrus"
)

// softFail degrades translation failures to safe defaults: detection falls
// back to the pivot language and translation to identity passthrough. The
// pipeline must never block on either stage, so nothing here returns an
// error.
type softFail struct {
	inner ItfTranslate
	log   *logrus.Logger
}

func NewSoftFail(inner ItfTranslate, log *logrus.Logger) ItfTranslate {
	return &softFail{inner: inner, log: log}
}

func (s *softFail) DetectLanguage(ctx context.Context, text string) (string, error) {
	lang, err := s.inner.DetectLanguage(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Language detection unavailable, assuming pivot language")
		return PivotLanguage, nil
	}
	return lang, nil
}

func (s *softFail) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	translated, err := s.inner.Translate(ctx, text, targetLang)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"target_lang": targetLang,
			"error":       err.Error(),
		}).Warn("Translation unavailable, passing text through unchanged")
		return text, nil
	}
	return translated, nil
}
