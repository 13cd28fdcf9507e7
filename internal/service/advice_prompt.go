package service

import (
	"fmt"
	"strings"

	"mind-journal/internal/domain"
)

// historyWindow limita el contexto que viaja en el prompt.
const historyWindow = 5

// buildAdvicePrompt arma el prompt del asistente empatico: emocion,
// intensidad como porcentaje entero, mensaje citado y contexto previo.
func buildAdvicePrompt(emotion domain.Emotion, intensity float64, message, history string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are an empathetic mental health assistant. A person is feeling %s with %d%% intensity.\n", emotion, int(intensity*100)))
	sb.WriteString(fmt.Sprintf("They said: %q\n\n", message))

	sb.WriteString("Previous conversation context:\n")
	sb.WriteString(history)
	sb.WriteString("\n\n")

	sb.WriteString("Provide a response in the following format:\n\n")

	sb.WriteString(markerResponse + "\n")
	sb.WriteString("[Write a warm, empathetic 2-3 sentence response acknowledging their feelings and showing support]\n\n")

	sb.WriteString(markerRecommendations + "\n")
	sb.WriteString("[Provide 5 detailed, creative recommendations. Each should be 2-3 sentences long and include:\n")
	sb.WriteString("- Specific steps or instructions\n")
	sb.WriteString("- Expected benefits\n")
	sb.WriteString("- How it relates to their current emotional state\n")
	sb.WriteString("- Any scientific backing if relevant]\n\n")

	sb.WriteString("Make recommendations unique and creative, avoiding generic advice. Consider both immediate relief and long-term growth.\n")
	sb.WriteString("Focus on holistic well-being: emotional, physical, social, and mental aspects.\n")

	return sb.String()
}

// formatHistory junta los ultimos mensajes como lineas "{role}: {content}".
func formatHistory(messages []domain.Message) string {
	if len(messages) > historyWindow {
		messages = messages[len(messages)-historyWindow:]
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}
