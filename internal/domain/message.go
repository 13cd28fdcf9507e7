package domain

import "time"

// Roles validos para un mensaje.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es inmutable una vez creado; sentiment y sentiment_score
// se setean juntos o no se setean.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Sentiment      *Emotion  `json:"sentiment,omitempty"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Tagged indica si el mensaje ya tiene etiqueta emocional completa.
func (m Message) Tagged() bool {
	return m.Sentiment != nil && m.SentimentScore != nil
}
