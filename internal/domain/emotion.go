package domain

// Emotion es el conjunto cerrado de etiquetas que produce el clasificador.
// Surprise existe solo como clave de recursos; el clasificador nunca la emite.
type Emotion string

const (
	EmotionJoy      Emotion = "Joy"
	EmotionSadness  Emotion = "Sadness"
	EmotionAnger    Emotion = "Anger"
	EmotionFear     Emotion = "Fear"
	EmotionAnxiety  Emotion = "Anxiety"
	EmotionNeutral  Emotion = "Neutral"
	EmotionHope     Emotion = "Hope"
	EmotionSurprise Emotion = "Surprise"
)

var validEmotions = map[Emotion]struct{}{
	EmotionJoy:      {},
	EmotionSadness:  {},
	EmotionAnger:    {},
	EmotionFear:     {},
	EmotionAnxiety:  {},
	EmotionNeutral:  {},
	EmotionHope:     {},
	EmotionSurprise: {},
}

// IsValid indica si la etiqueta pertenece al conjunto cerrado.
func (e Emotion) IsValid() bool {
	_, ok := validEmotions[e]
	return ok
}

// EmotionStyle agrupa metadata visual por emocion (color e icono).
type EmotionStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var emotionStyles = map[Emotion]EmotionStyle{
	EmotionJoy:      {Color: "#00FF00", Icon: "😊"},
	EmotionSadness:  {Color: "#0000FF", Icon: "😢"},
	EmotionAnger:    {Color: "#FF0000", Icon: "😠"},
	EmotionFear:     {Color: "#800080", Icon: "😨"},
	EmotionAnxiety:  {Color: "#FFA500", Icon: "😰"},
	EmotionNeutral:  {Color: "#808080", Icon: "😐"},
	EmotionHope:     {Color: "#00FFFF", Icon: "🤗"},
	EmotionSurprise: {Color: "#FFFF00", Icon: "😮"},
}

// Style devuelve la metadata visual; emociones desconocidas caen en Neutral.
func (e Emotion) Style() EmotionStyle {
	if s, ok := emotionStyles[e]; ok {
		return s
	}
	return emotionStyles[EmotionNeutral]
}

// IntensityLevel clasifica una intensidad [0,1] en bandas para la UI.
// Low < 33%, Medium 33-66%, High >= 66%.
func IntensityLevel(intensity float64) string {
	pct := int(intensity * 100)
	switch {
	case pct < 33:
		return "Low"
	case pct < 66:
		return "Medium"
	default:
		return "High"
	}
}
