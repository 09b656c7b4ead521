// Package rubric holds the fixed scoring bands of the platform and the
// classification of a rubric average into a proficiency level.
package rubric

import "fmt"

// Band is the inclusive [Low, High] range a single category score must
// fall within. Categories are kept in slices so validation walks them in
// a fixed order and error messages stay deterministic.
type Band struct {
	Category string
	Low      float64
	High     float64
}

// StudentRubric scores a student's signing across four categories.
var StudentRubric = []Band{
	{"fluencia", 0, 5},
	{"vocabulario", 0, 5},
	{"compreensao", 0, 5},
	{"expressao", 0, 5},
}

// EvaluatorReviewRubric scores an evaluator's teaching across three categories.
var EvaluatorReviewRubric = []Band{
	{"conhecimento_libras", 0, 5},
	{"didatica", 0, 5},
	{"feedback", 0, 5},
}

type levelThreshold struct {
	name string
	low  float64
	high float64
}

// Half-open bands over the rubric mean; only the top band includes its
// upper bound.
var levelThresholds = []levelThreshold{
	{"iniciante", 0, 1.5},
	{"basico", 1.5, 2.75},
	{"intermediario", 2.75, 3.75},
	{"avancado", 3.75, 4.5},
	{"fluente", 4.5, 5.0},
}

// ValidationError carries the client-facing message for a rejected score map.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateScores checks the raw payload against the given bands. Every band
// category must be present and carry a numeric value inside its range.
// Accepted values are truncated to int and extra payload keys are dropped:
// the returned map holds exactly the band categories.
func ValidateScores(payload map[string]interface{}, bands []Band) (map[string]int, error) {
	scores := make(map[string]int, len(bands))
	for _, band := range bands {
		raw, ok := payload[band.Category]
		if !ok {
			return nil, &ValidationError{Message: "Categoria obrigatória ausente: " + band.Category}
		}
		value, ok := raw.(float64)
		if !ok {
			return nil, &ValidationError{Message: "Pontuação inválida para " + band.Category}
		}
		if value < band.Low || value > band.High {
			return nil, &ValidationError{Message: fmt.Sprintf("Pontuação de %s precisa estar entre %g e %g", band.Category, band.Low, band.High)}
		}
		scores[band.Category] = int(value)
	}
	return scores, nil
}

// Average returns the arithmetic mean of the validated scores.
func Average(scores map[string]int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}

// ClassifyLevel maps a rubric average onto one of the five proficiency
// levels. The thresholds cover [0,5], so the iniciante fallback only fires
// for averages outside the scale.
func ClassifyLevel(average float64) string {
	for _, t := range levelThresholds {
		if average >= t.low && average < t.high {
			return t.name
		}
		if t.name == "fluente" && average == t.high {
			return t.name
		}
	}
	return "iniciante"
}
