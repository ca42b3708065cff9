package chat

import (
	"encoding/json"
	"mime/multipart"
	"time"

	"gis-assistant/internal/entity"
	"gis-assistant/pkg/hazard"
	"gis-assistant/pkg/intent"
	"gis-assistant/pkg/maprender"
)

type MessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type VoiceRequest struct {
	AudioFile *multipart.FileHeader `json:"audio_file" validate:"required"`
}

type IntentTestRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type IntentTestResponse struct {
	Input  string        `json:"input"`
	Intent intent.Intent `json:"intent"`
}

type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type TurnResponse struct {
	ID        string              `json:"id"`
	Role      entity.Role         `json:"role"`
	Kind      entity.ResponseKind `json:"kind"`
	Payload   json.RawMessage     `json:"payload"`
	CreatedAt time.Time           `json:"created_at"`
}

// MessageResponse carries the bot turn produced for one user message,
// plus the transcript when the message arrived as audio.
type MessageResponse struct {
	Transcript string       `json:"transcript,omitempty"`
	BotTurn    TurnResponse `json:"bot_turn"`
}

// Payload shapes, one per response kind.

type TextPayload struct {
	Message string `json:"message"`
	Warning bool   `json:"warning,omitempty"`
}

type QuestionListPayload struct {
	Message   string   `json:"message"`
	Questions []string `json:"questions"`
}

type PoiMapPayload struct {
	Category intent.PoiCategory `json:"category"`
	TagKey   string             `json:"tag_key"`
	TagValue string             `json:"tag_value"`
	Region   string             `json:"region"`
	Map      maprender.MapSpec  `json:"map"`
	Count    int                `json:"count"`
	Summary  string             `json:"summary"`
}

type DisasterMapPayload struct {
	DisasterType intent.DisasterType `json:"disaster_type"`
	Region       string              `json:"region"`
	Map          maprender.MapSpec   `json:"map"`
	Info         string              `json:"info"`
	Summary      hazard.Table        `json:"summary"`
}

type GlobalHazardPayload struct {
	Filter  intent.HazardFilter `json:"filter"`
	Map     maprender.MapSpec   `json:"map"`
	Info    string              `json:"info"`
	Summary *hazard.Table       `json:"summary,omitempty"`
}
