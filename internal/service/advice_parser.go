package service

import (
	"fmt"
	"strings"
	"unicode"

	"mind-journal/internal/domain"
)

// Marcadores literales que el prompt le pide al modelo.
const (
	markerResponse        = "RESPONSE"
	markerRecommendations = "RECOMMENDATIONS"
)

// AdviceParser extrae la estructura {respuesta, recomendaciones, recursos}
// del texto libre del modelo. Salida malformada nunca es error: degrada a
// los contenidos de fallback.
type AdviceParser struct{}

// DefaultAdviceParser permite uso directo sin instanciar.
var DefaultAdviceParser = AdviceParser{}

// Parse recorre el texto linea por linea manteniendo la seccion actual.
// Las lineas marcador cambian de seccion y se descartan; en recomendaciones
// solo cuentan las lineas que empiezan con digito (convencion "1. ..."),
// a las que se les quitan los dos primeros caracteres antes de recortar.
func (AdviceParser) Parse(raw string, emotion domain.Emotion) domain.Advice {
	var response strings.Builder
	var recommendations []string
	section := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case markerResponse:
			section = "response"
			continue
		case markerRecommendations:
			section = "recommendations"
			continue
		}

		switch section {
		case "response":
			response.WriteString(line)
			response.WriteString(" ")
		case "recommendations":
			runes := []rune(line)
			if !unicode.IsDigit(runes[0]) {
				continue
			}
			item := ""
			if len(runes) > 2 {
				item = string(runes[2:])
			}
			recommendations = append(recommendations, strings.TrimSpace(item))
		}
	}

	advice := domain.Advice{
		Response:        strings.TrimSpace(response.String()),
		Recommendations: recommendations,
		Resources:       ResourcesFor(emotion),
	}

	if advice.Response == "" {
		advice.Response = fallbackResponse(emotion)
	}
	if len(advice.Recommendations) == 0 {
		advice.Recommendations = fallbackRecommendations(emotion)
	}
	return advice
}

func fallbackResponse(emotion domain.Emotion) string {
	return fmt.Sprintf("I understand you're feeling %s. I'm here to listen and support you. Would you like to tell me more about what's troubling you?", emotion)
}

func fallbackRecommendations(emotion domain.Emotion) []string {
	return []string{
		fmt.Sprintf("Practice mindful breathing: Take 5 deep breaths, focusing on the sensation of air moving through your body. This activates your parasympathetic nervous system, helping to reduce %s.", emotion),
		"Engage in expressive writing: Spend 10-15 minutes writing freely about your feelings and experiences. Research shows this can help process emotions and reduce stress.",
		"Try progressive muscle relaxation: Systematically tense and relax each muscle group, promoting physical and emotional release.",
		"Create a comfort playlist: Curate songs that uplift your mood or match your current emotions. Music therapy has been shown to influence emotional regulation.",
		"Practice the 5-4-3-2-1 grounding technique: Name 5 things you see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
	}
}
