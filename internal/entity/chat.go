package entity

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ResponseKind mirrors a renderable response variant.
type ResponseKind string

const (
	KindText            ResponseKind = "text"
	KindPoiMap          ResponseKind = "poi_map"
	KindDisasterMap     ResponseKind = "disaster_map"
	KindGlobalHazardMap ResponseKind = "global_hazard_map"
	KindSummaryTable    ResponseKind = "summary_table"
	KindQuestionList    ResponseKind = "question_list"
)

type ChatSession struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// ChatTurn is one record of a conversation: either the user's verbatim
// utterance or the bot's response. Turns are append-only and immutable.
type ChatTurn struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Role      Role            `json:"role"`
	Kind      ResponseKind    `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
