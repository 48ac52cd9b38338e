package assistantService

import (
	"TinyTotsGolang/internal/api/assistant"
	contextPkg "TinyTotsGolang/pkg/context"
	"TinyTotsGolang/pkg/nlp"
	"TinyTotsGolang/pkg/translate"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// SubmitCommand runs one transcript through the full pipeline: detect the
// spoken language, translate to the English pivot, extract the intent,
// dispatch the action, then translate the result back and hand it to the
// speech side channel. Detection and translation never fail the session;
// action errors do.
func (s *assistantService) SubmitCommand(ctx context.Context, parentID string, req assistant.CommandRequest) (*assistant.CommandSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, assistant.ErrEmptyTranscript
	}

	s.mu.Lock()
	if text == s.lastTranscript {
		s.mu.Unlock()
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"transcript": text,
		}).Debug("Skipping duplicate transcript")
		return nil, assistant.ErrDuplicateTranscript
	}
	s.lastTranscript = text
	s.mu.Unlock()

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	session := &assistant.CommandSession{
		ID:            id,
		RawTranscript: text,
		Status:        assistant.StatusProcessing,
		CreatedAt:     time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": session.ID,
				"panic":      fmt.Sprintf("%v", r),
			}).Error("Command pipeline panicked")
			s.failSession(session, "INTERNAL", "internal pipeline error")
		}
	}()

	// Soft-failing stages: on provider trouble these fall back to
	// pivot-language passthrough instead of returning an error. Text
	// already in the pivot language skips the translation round trip.
	session.DetectedLanguage, _ = s.translator.DetectLanguage(ctx, text)
	if session.DetectedLanguage == translate.PivotLanguage {
		session.PivotText = text
	} else {
		session.PivotText, _ = s.translator.Translate(ctx, text, translate.PivotLanguage)
	}

	extraction := nlp.ExtractIntent(session.PivotText)
	session.Intent = extraction.Intent.String()
	session.Slots = extraction.Slots

	actionCtx := assistant.ActionContext{
		ParentID:      parentID,
		ActiveChildID: req.ActiveChildID,
	}

	result, err := s.dispatch(ctx, actionCtx, extraction, session.PivotText)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"intent":     session.Intent,
			"error":      err.Error(),
		}).Error("Action dispatch failed")
		s.failSession(session, "ACTION_FAILED", err.Error())
		return session, nil
	}

	session.ActionResult = result
	session.LocalizedResult = s.localizeResult(ctx, result, session.DetectedLanguage)
	session.AudioURL = s.synthesizeReply(ctx, requestID, session.LocalizedResult)
	s.speakAsync(requestID, session.LocalizedResult, session.DetectedLanguage)

	session.Status = assistant.StatusDone
	return session, nil
}

func (s *assistantService) DebugIntent(text string) assistant.IntentDebugResponse {
	return assistant.NewIntentDebugResponse(text, nlp.ExtractIntent(text))
}

func (s *assistantService) failSession(session *assistant.CommandSession, code, message string) {
	session.Status = assistant.StatusFailed
	session.Error = &assistant.SessionError{
		Code:    code,
		Message: message,
	}
}

// localizeResult translates the English result message back into the
// language the parent spoke. English input skips the round trip.
func (s *assistantService) localizeResult(ctx context.Context, result, detectedLanguage string) string {
	if detectedLanguage == "" || detectedLanguage == translate.PivotLanguage {
		return result
	}

	localized, _ := s.translator.Translate(ctx, result, detectedLanguage)
	return localized
}

// synthesizeReply renders the localized reply to speech and stores it.
// Synthesis trouble leaves the session without an audio URL but never
// fails it.
func (s *assistantService) synthesizeReply(ctx context.Context, requestID, text string) string {
	if s.tts == nil || s.s3Client == nil || text == "" {
		return ""
	}

	audioData, err := s.tts.GenerateAudio(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate reply audio")
		return ""
	}

	audioURL, err := s.s3Client.UploadFileFromBytes("assistant-reply.mp3", audioData)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload reply audio")
		return ""
	}

	return audioURL
}

// speakAsync pushes the reply to the playback bridge so connected devices
// read it aloud. Fire and forget.
func (s *assistantService) speakAsync(requestID, text, languageHint string) {
	if s.playback == nil || text == "" {
		return
	}

	go func() {
		if err := s.playback.Speak(text, languageHint); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to push reply to playback bridge")
		}
	}()
}
