package chat

import "gis-assistant/pkg/response"

var (
	ErrSessionNotFound     = response.NewError(404, "session not found")
	ErrInvalidAudioFile    = response.NewError(400, "invalid audio file")
	ErrAudioFileTooLarge   = response.NewError(400, "audio file too large")
	ErrUnsupportedFormat   = response.NewError(400, "unsupported audio format")
	ErrNoSpeechDetected    = response.NewError(422, "no speech detected")
	ErrSpeechNotUnderstood = response.NewError(422, "could not understand audio")
	ErrSpeechServiceFailed = response.NewError(502, "speech recognition service unavailable")
	ErrTurnNotRecorded     = response.NewError(500, "failed to record conversation turn")
)
