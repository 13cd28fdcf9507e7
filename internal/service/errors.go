package service

import (
	"errors"
	"fmt"
)

var (
	ErrChatServiceNotConfigured = errors.New("chat service not configured")
	ErrEmptyMessage             = errors.New("empty message")
	ErrInvalidTitle             = errors.New("invalid conversation title")
)

// Colaboradores externos que pueden fallar en un turno.
const (
	CollaboratorSpeech  = "speech"
	CollaboratorModel   = "model"
	CollaboratorStorage = "storage"
)

// CollaboratorError marca la falla de un colaborador externo (speech no
// reconocido, llamada al modelo fallida o storage caido) sin dejar escapar
// errores crudos hacia la interfaz.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s collaborator failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func collaboratorErr(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

// IsCollaborator indica si err proviene del colaborador dado.
func IsCollaborator(err error, collaborator string) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce) && ce.Collaborator == collaborator
}
