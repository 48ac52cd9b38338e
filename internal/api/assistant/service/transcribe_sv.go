package assistantService

import (
	"TinyTotsGolang/internal/api/assistant"
	contextPkg "TinyTotsGolang/pkg/context"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// TranscribeAndSubmit runs Whisper over an uploaded recording and feeds the
// transcript into the command pipeline.
func (s *assistantService) TranscribeAndSubmit(ctx context.Context, parentID string, file *multipart.FileHeader, activeChildID string) (*assistant.CommandSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"error":      err.Error(),
		}).Warn("Rejected audio upload")
		return nil, assistant.ErrInvalidAudioFile
	}

	tempPath, cleanup, err := s.saveTempAudio(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to stage audio file for transcription")
		return nil, assistant.ErrTranscriptionFailed
	}
	defer cleanup()

	transcript, err := s.transcriber.TranscribeAudio(ctx, tempPath)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Whisper transcription failed")
		return nil, assistant.ErrTranscriptionFailed
	}

	return s.SubmitCommand(ctx, parentID, assistant.CommandRequest{
		Text:          transcript,
		ActiveChildID: activeChildID,
	})
}

func (s *assistantService) saveTempAudio(file *multipart.FileHeader) (string, func(), error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	tmp, err := os.CreateTemp("", fmt.Sprintf("assistant-*%s", ext))
	if err != nil {
		return "", nil, err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	cleanup := func() { os.Remove(tmp.Name()) }
	return tmp.Name(), cleanup, nil
}
