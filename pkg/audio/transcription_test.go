package audio

import (
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTranscriptionError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"bad request means unintelligible audio", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}, ErrNotUnderstood},
		{"unprocessable entity means unintelligible audio", &openai.APIError{HTTPStatusCode: http.StatusUnprocessableEntity}, ErrNotUnderstood},
		{"server error means service unavailable", &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}, ErrServiceUnavailable},
		{"rate limit means service unavailable", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, ErrServiceUnavailable},
		{"transport error means service unavailable", errors.New("connection refused"), ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyTranscriptionError(tt.err), tt.wantErr)
		})
	}
}
