package chatService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gis-assistant/internal/api/chat"
	"gis-assistant/internal/entity"
	contextPkg "gis-assistant/pkg/context"
	"gis-assistant/pkg/geocode"
	"gis-assistant/pkg/hazard"
	"gis-assistant/pkg/intent"
	"gis-assistant/pkg/maprender"
)

// ProcessMessage runs one conversation turn: classify the utterance, build
// the bot response, and append the user/bot turn pair in one transaction so
// the history never holds an orphan user record.
func (s *chatService) ProcessMessage(
	ctx context.Context,
	sessionID string,
	req chat.MessageRequest,
) (*chat.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	session, err := repo.Sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	classified := s.classifier.Classify(req.Text)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"intent":     string(classified.Kind),
		"region":     classified.Region,
	}).Info("Utterance classified")

	userTurn, err := s.newTurn(session.ID, entity.RoleUser, entity.KindText, chat.TextPayload{Message: req.Text})
	if err != nil {
		return nil, err
	}

	kind, payload := s.dispatch(ctx, classified)

	botTurn, err := s.newTurn(session.ID, entity.RoleBot, kind, payload)
	if err != nil {
		return nil, err
	}

	if err := repo.Turns.AppendTurn(ctx, userTurn); err != nil {
		return nil, chat.ErrTurnNotRecorded
	}
	if err := repo.Turns.AppendTurn(ctx, botTurn); err != nil {
		return nil, chat.ErrTurnNotRecorded
	}
	if err := repo.Sessions.TouchSession(ctx, session.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to update session activity")
	}

	if err := repo.Commit(); err != nil {
		return nil, err
	}

	return &chat.MessageResponse{BotTurn: makeTurnResponse(botTurn)}, nil
}

// dispatch maps an intent record to a response kind and payload. It never
// fails: collaborator problems come back as warning-style text payloads so
// every turn still yields exactly one bot record.
func (s *chatService) dispatch(ctx context.Context, it intent.Intent) (entity.ResponseKind, interface{}) {
	switch it.Kind {
	case intent.KindGreeting:
		reply, ok := intent.GreetingResponse(it.RawText)
		if !ok {
			reply = intent.FallbackMessage
		}
		return entity.KindText, chat.TextPayload{Message: reply}

	case intent.KindHelp:
		return entity.KindQuestionList, chat.QuestionListPayload{
			Message:   intent.HelpMessage,
			Questions: intent.HelpQuestions,
		}

	case intent.KindDisasterQuery:
		return s.dispatchDisaster(it)

	case intent.KindPoiQuery:
		return s.dispatchPoi(ctx, it)

	case intent.KindGlobalHazardQuery:
		return s.dispatchGlobalHazard(it)

	default:
		return entity.KindText, chat.TextPayload{Message: intent.FallbackMessage}
	}
}

func (s *chatService) dispatchDisaster(it intent.Intent) (entity.ResponseKind, interface{}) {
	spec, err := maprender.DisasterMap(it.DisasterType, it.Region)
	if err != nil {
		// Unreachable with the fixed vocabulary, checked defensively.
		s.log.WithFields(logrus.Fields{
			"disaster_type": string(it.DisasterType),
			"error":         err.Error(),
		}).Error("Unknown disaster type reached dispatch")
		return entity.KindText, chat.TextPayload{Message: "Unknown disaster type.", Warning: true}
	}

	summary, _ := hazard.SummaryForDisaster(it.DisasterType)
	return entity.KindDisasterMap, chat.DisasterMapPayload{
		DisasterType: it.DisasterType,
		Region:       it.Region,
		Map:          spec,
		Info:         hazard.Info(it.DisasterType),
		Summary:      summary,
	}
}

func (s *chatService) dispatchPoi(ctx context.Context, it intent.Intent) (entity.ResponseKind, interface{}) {
	points, err := s.geocoder.FindPOI(ctx, it.PoiCategory, it.Region)
	if err != nil {
		if errors.Is(err, geocode.ErrPlaceNotFound) {
			return entity.KindText, chat.TextPayload{
				Message: fmt.Sprintf("No data found for %s in %s.", it.PoiCategory.Keyword(), it.Region),
				Warning: true,
			}
		}
		s.log.WithFields(logrus.Fields{
			"category": string(it.PoiCategory),
			"region":   it.Region,
			"error":    err.Error(),
		}).Error("POI lookup failed")
		return entity.KindText, chat.TextPayload{
			Message: fmt.Sprintf("Error retrieving map data for %s in %s.", it.PoiCategory.Keyword(), it.Region),
			Warning: true,
		}
	}

	if len(points) == 0 {
		return entity.KindText, chat.TextPayload{
			Message: fmt.Sprintf("No data found for %s in %s.", it.PoiCategory.Keyword(), it.Region),
			Warning: true,
		}
	}

	markers := make([]maprender.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, maprender.Marker{Lat: p.Lat, Lon: p.Lon, Label: p.Label})
	}

	tagKey, tagValue := it.PoiCategory.OSMTag()
	return entity.KindPoiMap, chat.PoiMapPayload{
		Category: it.PoiCategory,
		TagKey:   tagKey,
		TagValue: tagValue,
		Region:   it.Region,
		Map:      maprender.MarkerMap(markers),
		Count:    len(points),
		Summary:  fmt.Sprintf("%ss in %s: retrieved live from the map provider.", it.PoiCategory.Keyword(), it.Region),
	}
}

func (s *chatService) dispatchGlobalHazard(it intent.Intent) (entity.ResponseKind, interface{}) {
	filter := it.HazardFilter
	if filter == "" {
		filter = intent.FilterAll
	}

	payload := chat.GlobalHazardPayload{
		Filter: filter,
		Map:    maprender.GlobalHazardMap(filter),
		Info:   hazard.GlobalInfo,
	}
	if summary, ok := hazard.Summary(filter); ok {
		payload.Summary = &summary
	}

	return entity.KindGlobalHazardMap, payload
}

func (s *chatService) newTurn(sessionID string, role entity.Role, kind entity.ResponseKind, payload interface{}) (entity.ChatTurn, error) {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.ChatTurn{}, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return entity.ChatTurn{}, err
	}

	return entity.ChatTurn{
		ID:        id,
		SessionID: sessionID,
		Role:      role,
		Kind:      kind,
		Payload:   encoded,
		CreatedAt: time.Now(),
	}, nil
}

func makeTurnResponse(turn entity.ChatTurn) chat.TurnResponse {
	return chat.TurnResponse{
		ID:        turn.ID,
		Role:      turn.Role,
		Kind:      turn.Kind,
		Payload:   turn.Payload,
		CreatedAt: turn.CreatedAt,
	}
}

// TestIntent exposes the classifier for debugging without touching history.
func (s *chatService) TestIntent(ctx context.Context, req chat.IntentTestRequest) (*chat.IntentTestResponse, error) {
	return &chat.IntentTestResponse{
		Input:  req.Text,
		Intent: s.classifier.Classify(req.Text),
	}, nil
}
