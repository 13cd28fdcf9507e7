package sentiment

import govader "github.com/jonreiter/govader"

// PolarityScores son los cuatro escalares de la convencion VADER:
// compound en [-1,1] y pos/neg/neu en [0,1] sumando ~1.
type PolarityScores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
}

// Scorer calcula polaridad lexica sobre texto libre.
// Debe ser determinista para el mismo input.
type Scorer interface {
	Score(text string) PolarityScores
}

// VaderScorer implementa Scorer con el analizador VADER.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(text string) PolarityScores {
	if s == nil || s.analyzer == nil {
		return PolarityScores{Neutral: 1}
	}
	r := s.analyzer.PolarityScores(text)
	return PolarityScores{
		Compound: r.Compound,
		Positive: r.Positive,
		Negative: r.Negative,
		Neutral:  r.Neutral,
	}
}
