package http

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-journal/internal/domain"
	"mind-journal/internal/repository"
	"mind-journal/internal/service"
	"mind-journal/internal/speech"
)

// ChatHandler mantiene dependencias para los endpoints de conversaciones.
type ChatHandler struct {
	logger  *zap.Logger
	chatSvc *service.ChatService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger:  logger,
		chatSvc: chatSvc,
	}
}

// messageView decora un mensaje con la metadata visual de su emocion.
type messageView struct {
	domain.Message
	IntensityLevel string `json:"intensity_level,omitempty"`
	Icon           string `json:"icon,omitempty"`
	Color          string `json:"color,omitempty"`
}

func newMessageView(m domain.Message) messageView {
	view := messageView{Message: m}
	if m.Sentiment != nil && m.SentimentScore != nil {
		style := m.Sentiment.Style()
		view.IntensityLevel = domain.IntensityLevel(*m.SentimentScore)
		view.Icon = style.Icon
		view.Color = style.Color
	}
	return view
}

type turnView struct {
	UserMessage      messageView   `json:"user_message"`
	AssistantMessage messageView   `json:"assistant_message"`
	Advice           domain.Advice `json:"advice"`
}

func newTurnView(result service.TurnResult) turnView {
	return turnView{
		UserMessage:      newMessageView(result.UserMessage),
		AssistantMessage: newMessageView(result.AssistantMessage),
		Advice:           result.Advice,
	}
}

// Health maneja GET /healthz.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateConversation maneja POST /conversations.
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	// El body es opcional: sin titulo se usa el default por timestamp.
	_ = c.ShouldBindJSON(&req)

	conv, err := h.chatSvc.StartConversation(c.Request.Context(), req.Title)
	if err != nil {
		h.fail(c, "create conversation failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation": conv})
}

// ListConversations maneja GET /conversations.
func (h *ChatHandler) ListConversations(c *gin.Context) {
	conversations, err := h.chatSvc.ListConversations(c.Request.Context())
	if err != nil {
		h.fail(c, "list conversations failed", err)
		return
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// ListMessages maneja GET /conversations/:id/messages.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatSvc.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "list messages failed", err)
		return
	}
	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, newMessageView(m))
	}
	c.JSON(http.StatusOK, gin.H{"messages": views})
}

// RenameConversation maneja PATCH /conversations/:id.
func (h *ChatHandler) RenameConversation(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid rename request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.chatSvc.RenameConversation(c.Request.Context(), c.Param("id"), req.Title); err != nil {
		h.fail(c, "rename conversation failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteConversation maneja DELETE /conversations/:id.
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	if err := h.chatSvc.DeleteConversation(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete conversation failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PostMessage maneja POST /conversations/:id/messages.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.chatSvc.HandleTurn(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		h.fail(c, "turn failed", err)
		return
	}
	c.JSON(http.StatusCreated, newTurnView(result))
}

// PostVoiceMessage maneja POST /conversations/:id/voice.
func (h *ChatHandler) PostVoiceMessage(c *gin.Context) {
	var req struct {
		Audio    string `json:"audio" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid voice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audio encoding"})
		return
	}

	result, err := h.chatSvc.HandleVoiceTurn(c.Request.Context(), c.Param("id"), audio, speech.NormalizeLanguage(req.Language))
	if err != nil {
		h.fail(c, "voice turn failed", err)
		return
	}
	c.JSON(http.StatusCreated, newTurnView(result))
}

// fail traduce errores del servicio a respuestas HTTP.
func (h *ChatHandler) fail(c *gin.Context, logMsg string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter a valid message"})
	case errors.Is(err, service.ErrInvalidTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, speech.ErrNoSpeech):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no speech recognized"})
	case service.IsCollaborator(err, service.CollaboratorSpeech):
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "speech service unavailable"})
	case service.IsCollaborator(err, service.CollaboratorModel):
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate response"})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
