package chatService

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"gis-assistant/internal/api/chat"
	"gis-assistant/pkg/audio"
	contextPkg "gis-assistant/pkg/context"
)

// ProcessVoice transcribes the uploaded audio and feeds the resulting text
// through the same pipeline as a typed message. Transcription failures do
// not append anything to history: there is nothing to classify.
func (s *chatService) ProcessVoice(
	ctx context.Context,
	sessionID string,
	req chat.VoiceRequest,
) (*chat.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(req.AudioFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return nil, chat.ErrInvalidAudioFile
	}

	audioPath, err := s.saveAudioFile(req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save audio file")
		return nil, err
	}
	defer os.Remove(audioPath)

	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Transcription failed")
		return nil, mapTranscriptionError(err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"transcript": transcript,
	}).Info("Voice transcript received")

	resp, err := s.ProcessMessage(ctx, sessionID, chat.MessageRequest{Text: transcript})
	if err != nil {
		return nil, err
	}

	resp.Transcript = transcript
	return resp, nil
}

func (s *chatService) saveAudioFile(req chat.VoiceRequest) (string, error) {
	src, err := req.AudioFile.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "voice-*"+filepath.Ext(req.AudioFile.Filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return dst.Name(), nil
}

func mapTranscriptionError(err error) error {
	switch {
	case errors.Is(err, audio.ErrNoSpeech):
		return chat.ErrNoSpeechDetected
	case errors.Is(err, audio.ErrNotUnderstood):
		return chat.ErrSpeechNotUnderstood
	default:
		return chat.ErrSpeechServiceFailed
	}
}
