package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	redisPkg "TinyTotsGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

// PivotLanguage is the language intent matching runs in. All non-English
// input is translated to it before extraction and results are translated
// back afterwards.
const PivotLanguage = "en"

const (
	translateURL = "https://translation.googleapis.com/language/translate/v2"
	detectURL    = "https://translation.googleapis.com/language/translate/v2/detect"
)

var ErrNotConfigured = errors.New("translation API key not configured")

type ItfTranslate interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text string, targetLang string) (string, error)
}

type googleTranslate struct {
	apiKey     string
	httpClient *http.Client
	cache      redisPkg.IRedis
	log        *logrus.Logger
}

// New builds the raw Google Cloud Translation v2 client. The API key is
// optional: without one every call returns ErrNotConfigured, which the
// soft-fail wrapper turns into the pivot-language / passthrough defaults.
// The cache may be nil; cache failures never surface.
func New(log *logrus.Logger, cache redisPkg.IRedis) ItfTranslate {
	return &googleTranslate{
		apiKey:     os.Getenv("GOOGLE_TRANSLATE_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		log:        log,
	}
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (g *googleTranslate) DetectLanguage(ctx context.Context, text string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	if lang, ok := g.cached(ctx, redisPkg.DetectionKey(text)); ok {
		return lang, nil
	}

	body := map[string]interface{}{"q": text}

	var parsed detectResponse
	if err := g.post(ctx, detectURL, body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("language detection failed: %s", parsed.Error.Message)
	}
	if len(parsed.Data.Detections) == 0 || len(parsed.Data.Detections[0]) == 0 {
		return "", errors.New("language detection returned no result")
	}

	lang := parsed.Data.Detections[0][0].Language
	g.store(ctx, redisPkg.DetectionKey(text), lang)

	return lang, nil
}

func (g *googleTranslate) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	if translated, ok := g.cached(ctx, redisPkg.TranslationKey(text, targetLang)); ok {
		return translated, nil
	}

	body := map[string]interface{}{
		"q":      text,
		"target": targetLang,
		"format": "text",
	}

	var parsed translateResponse
	if err := g.post(ctx, translateURL, body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("translation failed: %s", parsed.Error.Message)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", errors.New("translation returned no result")
	}

	translated := parsed.Data.Translations[0].TranslatedText
	g.store(ctx, redisPkg.TranslationKey(text, targetLang), translated)

	return translated, nil
}

func (g *googleTranslate) post(ctx context.Context, url string, body map[string]interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+g.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(respBody, out)
}

func (g *googleTranslate) cached(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}

	value, err := g.cache.GetTranslation(ctx, key)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}

func (g *googleTranslate) store(ctx context.Context, key, value string) {
	if g.cache == nil {
		return
	}

	if err := g.cache.SetTranslation(ctx, key, value, 24*time.Hour); err != nil {
		g.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Debug("Failed to cache translation result")
	}
}
