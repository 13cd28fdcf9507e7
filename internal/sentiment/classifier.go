package sentiment

import (
	"strings"

	"mind-journal/internal/domain"
)

// Classifier mapea scores de polaridad + texto crudo a una etiqueta
// emocional con su intensidad. Es una cascada de primera coincidencia:
// varias bandas numericas se tocan en los bordes, asi que el orden de
// evaluacion es parte del contrato (compound == -0.5 cae en Anger/Sadness,
// no en Fear/Anxiety).
type Classifier struct{}

// DefaultClassifier permite uso directo sin instanciar.
var DefaultClassifier = Classifier{}

// Classify es pura: sin efectos ni errores. Los chequeos de palabras clave
// son substring case-insensitive sobre el texto de entrada y aplican solo
// en las bandas negativas.
func (Classifier) Classify(text string, s PolarityScores) (domain.Emotion, float64) {
	lower := strings.ToLower(text)

	switch {
	case s.Compound >= 0.5:
		return domain.EmotionJoy, s.Positive
	case s.Compound >= 0.2:
		return domain.EmotionHope, s.Positive
	case s.Compound > -0.2 && s.Compound < 0.2:
		return domain.EmotionNeutral, s.Neutral
	case s.Compound <= -0.5:
		if strings.Contains(lower, "angry") || s.Negative > 0.6 {
			return domain.EmotionAnger, s.Negative
		}
		return domain.EmotionSadness, s.Negative
	case s.Compound < -0.2:
		if strings.Contains(lower, "cry") || strings.Contains(lower, "sad") {
			return domain.EmotionSadness, s.Negative
		}
		if s.Neutral > 0.6 {
			return domain.EmotionAnxiety, s.Negative
		}
		return domain.EmotionFear, s.Negative
	}

	// Inalcanzable si las bandas de arriba son exhaustivas.
	return domain.EmotionNeutral, s.Neutral
}
