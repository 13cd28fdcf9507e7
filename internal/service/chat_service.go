package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mind-journal/internal/domain"
	"mind-journal/internal/llm"
	"mind-journal/internal/repository"
	"mind-journal/internal/sentiment"
	"mind-journal/internal/speech"
)

// replyIntensityPlaceholder es la intensidad fija con la que se genera la
// respuesta empatica. El pedido de recomendaciones usa la intensidad medida;
// la generacion de la respuesta siempre recibe 0.5. Comportamiento heredado
// que se preserva tal cual.
const replyIntensityPlaceholder = 0.5

// ChatService orquesta un turno completo: clasificar, persistir el mensaje
// del usuario, generar consejo y respuesta, re-clasificar la respuesta,
// persistirla y cerrar el turno. Todo sincronico, un turno a la vez.
type ChatService struct {
	logger        *zap.Logger
	scorer        sentiment.Scorer
	classifier    sentiment.Classifier
	llmClient     llm.LLMClient
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	parser        AdviceParser
	cache         AdviceCache
	recognizer    speech.Recognizer
}

func NewChatService(
	logger *zap.Logger,
	scorer sentiment.Scorer,
	llmClient llm.LLMClient,
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	cache AdviceCache,
	recognizer speech.Recognizer,
) *ChatService {
	return &ChatService{
		logger:        logger,
		scorer:        scorer,
		classifier:    sentiment.DefaultClassifier,
		llmClient:     llmClient,
		conversations: conversations,
		messages:      messages,
		parser:        DefaultAdviceParser,
		cache:         cache,
		recognizer:    recognizer,
	}
}

// TurnResult es el resultado de un turno usuario -> asistente.
type TurnResult struct {
	UserMessage      domain.Message `json:"user_message"`
	AssistantMessage domain.Message `json:"assistant_message"`
	Advice           domain.Advice  `json:"advice"`
}

func (s *ChatService) configured() bool {
	return s != nil && s.scorer != nil && s.llmClient != nil &&
		s.conversations != nil && s.messages != nil
}

// StartConversation crea una conversacion nueva. Sin titulo explicito se
// deriva del timestamp de creacion.
func (s *ChatService) StartConversation(ctx context.Context, title string) (domain.Conversation, error) {
	if !s.configured() {
		return domain.Conversation{}, ErrChatServiceNotConfigured
	}

	now := time.Now().UTC()
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Chat " + now.Format("2006-01-02 15:04")
	}

	conv := domain.Conversation{
		ID:          uuid.NewString(),
		Title:       title,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return domain.Conversation{}, collaboratorErr(CollaboratorStorage, err)
	}
	return conv, nil
}

// ListConversations devuelve las conversaciones, la mas nueva primero.
func (s *ChatService) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	if !s.configured() {
		return nil, ErrChatServiceNotConfigured
	}
	out, err := s.conversations.List(ctx)
	if err != nil {
		return nil, collaboratorErr(CollaboratorStorage, err)
	}
	return out, nil
}

// ListMessages devuelve los mensajes de la conversacion en orden de creacion.
func (s *ChatService) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if !s.configured() {
		return nil, ErrChatServiceNotConfigured
	}
	if _, err := s.conversations.GetByID(ctx, conversationID); err != nil {
		return nil, s.storageErr(err)
	}
	out, err := s.messages.ListByConversationID(ctx, conversationID)
	if err != nil {
		return nil, collaboratorErr(CollaboratorStorage, err)
	}
	return out, nil
}

// RenameConversation cambia el titulo; unico campo mutable.
func (s *ChatService) RenameConversation(ctx context.Context, conversationID, title string) error {
	if !s.configured() {
		return ErrChatServiceNotConfigured
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	return s.storageErr(s.conversations.Rename(ctx, conversationID, title))
}

// DeleteConversation borra la conversacion y sus mensajes atomicamente.
func (s *ChatService) DeleteConversation(ctx context.Context, conversationID string) error {
	if !s.configured() {
		return ErrChatServiceNotConfigured
	}
	return s.storageErr(s.conversations.Delete(ctx, conversationID))
}

// HandleTurn procesa un turno de texto. La secuencia es parte del contrato:
// validar input, leer historial previo, clasificar y persistir el mensaje
// del usuario, pedir consejo con la intensidad medida, generar la respuesta
// con el placeholder fijo, re-clasificar y persistir la respuesta, y recien
// entonces actualizar last_updated de la conversacion.
func (s *ChatService) HandleTurn(ctx context.Context, conversationID, text string) (TurnResult, error) {
	if !s.configured() {
		return TurnResult{}, ErrChatServiceNotConfigured
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return TurnResult{}, ErrEmptyMessage
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return TurnResult{}, s.storageErr(err)
	}

	// El historial se captura antes de persistir el turno en curso.
	previous, err := s.messages.ListByConversationID(ctx, conv.ID)
	if err != nil {
		return TurnResult{}, collaboratorErr(CollaboratorStorage, err)
	}
	history := formatHistory(previous)

	emotion, intensity := s.classifier.Classify(text, s.scorer.Score(text))

	userMsg, err := s.persistMessage(ctx, conv.ID, domain.RoleUser, text, emotion, intensity)
	if err != nil {
		return TurnResult{}, err
	}

	advice, err := s.fetchAdvice(ctx, emotion, intensity, text)
	if err != nil {
		return TurnResult{}, err
	}

	replyRaw, err := s.llmClient.Generate(ctx, buildAdvicePrompt(emotion, replyIntensityPlaceholder, text, history))
	if err != nil {
		return TurnResult{}, collaboratorErr(CollaboratorModel, err)
	}
	reply := s.parser.Parse(replyRaw, emotion).Response

	// La respuesta se clasifica por su cuenta: puede llevar otra etiqueta
	// que el mensaje que la provoco.
	replyEmotion, replyIntensity := s.classifier.Classify(reply, s.scorer.Score(reply))

	assistantMsg, err := s.persistMessage(ctx, conv.ID, domain.RoleAssistant, reply, replyEmotion, replyIntensity)
	if err != nil {
		return TurnResult{}, err
	}

	if err := s.conversations.Touch(ctx, conv.ID, time.Now().UTC()); err != nil {
		return TurnResult{}, collaboratorErr(CollaboratorStorage, err)
	}

	if s.logger != nil {
		s.logger.Info("turn completed",
			zap.String("conversation_id", conv.ID),
			zap.String("user_emotion", string(emotion)),
			zap.Float64("user_intensity", intensity),
			zap.String("assistant_emotion", string(replyEmotion)),
		)
	}

	return TurnResult{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Advice:           advice,
	}, nil
}

// HandleVoiceTurn transcribe el audio y delega en HandleTurn.
func (s *ChatService) HandleVoiceTurn(ctx context.Context, conversationID string, audio []byte, language string) (TurnResult, error) {
	if !s.configured() || s.recognizer == nil {
		return TurnResult{}, ErrChatServiceNotConfigured
	}
	text, err := s.recognizer.Recognize(ctx, audio, language)
	if err != nil {
		return TurnResult{}, collaboratorErr(CollaboratorSpeech, err)
	}
	return s.HandleTurn(ctx, conversationID, text)
}

// fetchAdvice pide recomendaciones con la intensidad real medida; el cache
// opcional evita repetir la llamada al modelo para el mismo pedido.
func (s *ChatService) fetchAdvice(ctx context.Context, emotion domain.Emotion, intensity float64, text string) (domain.Advice, error) {
	key := AdviceCacheKey(emotion, intensity, text)
	if s.cache != nil {
		if advice, ok := s.cache.Get(ctx, key); ok {
			return advice, nil
		}
	}

	raw, err := s.llmClient.Generate(ctx, buildAdvicePrompt(emotion, intensity, text, ""))
	if err != nil {
		return domain.Advice{}, collaboratorErr(CollaboratorModel, err)
	}
	advice := s.parser.Parse(raw, emotion)

	if s.cache != nil {
		s.cache.Set(ctx, key, advice)
	}
	return advice, nil
}

func (s *ChatService) persistMessage(ctx context.Context, conversationID, role, content string, emotion domain.Emotion, intensity float64) (domain.Message, error) {
	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Sentiment:      &emotion,
		SentimentScore: &intensity,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, collaboratorErr(CollaboratorStorage, err)
	}
	return msg, nil
}

// storageErr deja pasar not-found tal cual y envuelve el resto como falla
// del colaborador de storage.
func (s *ChatService) storageErr(err error) error {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return collaboratorErr(CollaboratorStorage, err)
}

// Classify expone la clasificacion para la UI (ej. vista previa de voz).
func (s *ChatService) Classify(text string) (domain.Emotion, float64) {
	if s == nil || s.scorer == nil {
		return domain.EmotionNeutral, 0
	}
	return s.classifier.Classify(text, s.scorer.Score(text))
}
