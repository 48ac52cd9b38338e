package assistantService

import (
	"TinyTotsGolang/internal/api/assistant"
	"TinyTotsGolang/pkg/audio"
	"TinyTotsGolang/pkg/playback"
	"TinyTotsGolang/pkg/s3"
	"TinyTotsGolang/pkg/translate"
	"TinyTotsGolang/pkg/utils"
	"context"
	"mime/multipart"
	"sync"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	SubmitCommand(ctx context.Context, parentID string, req assistant.CommandRequest) (*assistant.CommandSession, error)
	TranscribeAndSubmit(ctx context.Context, parentID string, file *multipart.FileHeader, activeChildID string) (*assistant.CommandSession, error)
	DebugIntent(text string) assistant.IntentDebugResponse
}

type assistantService struct {
	log         *logrus.Logger
	translator  translate.ItfTranslate
	executor    assistant.ActionExecutor
	transcriber audio.ITranscription
	tts         audio.ITTS
	s3Client    s3.ItfS3
	playback    playback.IPlayback
	utils       utils.IUtils

	// Guards the duplicate-transcript check. The assistant UI fires the
	// same final transcript more than once when speech recognition
	// re-emits results, so the last processed text is remembered and
	// repeats are rejected.
	mu             sync.Mutex
	lastTranscript string
}

func New(
	log *logrus.Logger,
	translator translate.ItfTranslate,
	executor assistant.ActionExecutor,
	transcriber audio.ITranscription,
	tts audio.ITTS,
	s3Client s3.ItfS3,
	playbackClient playback.IPlayback,
	utils utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:         log,
		translator:  translate.NewSoftFail(translator, log),
		executor:    executor,
		transcriber: transcriber,
		tts:         tts,
		s3Client:    s3Client,
		playback:    playbackClient,
		utils:       utils,
	}
}
