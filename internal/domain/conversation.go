package domain

import "time"

// Conversation agrupa los mensajes de una sesion de diario.
// Se crea por accion explicita del usuario y se borra en cascada.
type Conversation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}
