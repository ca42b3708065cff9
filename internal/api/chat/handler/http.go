package chatHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	chatService "gis-assistant/internal/api/chat/service"
	"gis-assistant/internal/middleware"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")
	chat.Use(h.middleware.NewRateLimiter)

	// Conversation sessions
	chat.Post("/sessions", h.CreateSession)
	chat.Get("/sessions/:session_id/turns", h.GetHistory)

	// Turn processing
	chat.Post("/sessions/:session_id/messages", h.ProcessMessage)
	chat.Post("/sessions/:session_id/voice", h.ProcessVoice)

	// Classifier debugging
	chat.Post("/intent/test", h.TestIntent)
}
