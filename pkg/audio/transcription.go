// Package audio wraps Whisper transcription for the voice input path.
package audio

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcription failures are split three ways so the user sees a distinct
// message for each: silence, unintelligible speech, and a broken service.
var (
	ErrNoSpeech           = errors.New("no speech detected")
	ErrNotUnderstood      = errors.New("could not understand audio")
	ErrServiceUnavailable = errors.New("speech recognition service unavailable")
)

type ITranscriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type transcriptionService struct {
	client *openai.Client
}

func New(apiKey string) ITranscriber {
	return &transcriptionService{client: openai.NewClient(apiKey)}
}

func (t *transcriptionService) Transcribe(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", classifyTranscriptionError(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}

	return text, nil
}

func classifyTranscriptionError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return ErrNotUnderstood
		default:
			return ErrServiceUnavailable
		}
	}
	return ErrServiceUnavailable
}
