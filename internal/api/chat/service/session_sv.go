package chatService

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gis-assistant/internal/api/chat"
	"gis-assistant/internal/entity"
	contextPkg "gis-assistant/pkg/context"
)

func (s *chatService) CreateSession(ctx context.Context) (*chat.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := entity.ChatSession{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := repo.Sessions.CreateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create chat session")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
	}).Info("Chat session created")

	return &chat.SessionResponse{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string) ([]chat.TurnResponse, error) {
	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	if _, err := repo.Sessions.GetSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}

	turns, err := repo.Turns.ListTurnsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := make([]chat.TurnResponse, 0, len(turns))
	for _, turn := range turns {
		history = append(history, makeTurnResponse(turn))
	}

	return history, nil
}
