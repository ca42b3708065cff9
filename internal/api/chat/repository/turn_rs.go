package chatRepository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"gis-assistant/internal/entity"
	contextPkg "gis-assistant/pkg/context"
)

func (r *turnRepository) AppendTurn(ctx context.Context, turn entity.ChatTurn) error {
	requestID := contextPkg.GetRequestID(ctx)

	payload := turn.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}

	argsKV := map[string]interface{}{
		"id":         turn.ID,
		"session_id": turn.SessionID,
		"role":       string(turn.Role),
		"kind":       string(turn.Kind),
		"payload":    string(payload),
		"created_at": turn.CreatedAt,
	}

	query, args, err := sqlx.Named(queryAppendTurn, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AppendTurn named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when appending turn")
		return err
	}

	return nil
}

func (r *turnRepository) ListTurnsBySessionID(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var turnsDB []ChatTurnDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryListTurnsBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListTurnsBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &turnsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListTurnsBySessionID execution err")
		return nil, err
	}

	turns := make([]entity.ChatTurn, 0, len(turnsDB))
	for _, t := range turnsDB {
		turns = append(turns, r.makeChatTurn(t))
	}

	return turns, nil
}

type ChatTurnDB struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	Role      string    `db:"role"`
	Kind      string    `db:"kind"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *turnRepository) makeChatTurn(db ChatTurnDB) entity.ChatTurn {
	return entity.ChatTurn{
		ID:        db.ID,
		SessionID: db.SessionID,
		Role:      entity.Role(db.Role),
		Kind:      entity.ResponseKind(db.Kind),
		Payload:   json.RawMessage(db.Payload),
		CreatedAt: db.CreatedAt,
	}
}
