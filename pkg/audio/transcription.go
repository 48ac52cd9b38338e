package audio

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscription interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

type TranscriptionService struct {
	client *openai.Client
}

func NewTranscriptionService(apiKey string) ITranscription {
	client := openai.NewClient(apiKey)
	return &TranscriptionService{client: client}
}

// TranscribeAudio runs Whisper over a local audio file. The source language
// is left for Whisper to detect, since parents speak to the assistant in
// whatever language they prefer and the pipeline detects it downstream
// anyway.
func (t *TranscriptionService) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
