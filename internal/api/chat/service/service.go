package chatService

import (
	"context"

	"github.com/sirupsen/logrus"

	"gis-assistant/internal/api/chat"
	chatRepository "gis-assistant/internal/api/chat/repository"
	"gis-assistant/pkg/audio"
	"gis-assistant/pkg/geocode"
	"gis-assistant/pkg/intent"
	"gis-assistant/pkg/utils"
)

type IChatService interface {
	CreateSession(ctx context.Context) (*chat.SessionResponse, error)
	GetHistory(ctx context.Context, sessionID string) ([]chat.TurnResponse, error)

	ProcessMessage(ctx context.Context, sessionID string, req chat.MessageRequest) (*chat.MessageResponse, error)
	ProcessVoice(ctx context.Context, sessionID string, req chat.VoiceRequest) (*chat.MessageResponse, error)

	TestIntent(ctx context.Context, req chat.IntentTestRequest) (*chat.IntentTestResponse, error)
}

type chatService struct {
	log         *logrus.Logger
	chatRepo    chatRepository.Repository
	classifier  *intent.Classifier
	geocoder    geocode.ILookup
	transcriber audio.ITranscriber
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	classifier *intent.Classifier,
	geocoder geocode.ILookup,
	transcriber audio.ITranscriber,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:         log,
		chatRepo:    chatRepo,
		classifier:  classifier,
		geocoder:    geocoder,
		transcriber: transcriber,
		utils:       utils,
	}
}
