package rubric

import (
	"testing"
)

func studentPayload(fluencia, vocabulario, compreensao, expressao interface{}) map[string]interface{} {
	return map[string]interface{}{
		"fluencia":    fluencia,
		"vocabulario": vocabulario,
		"compreensao": compreensao,
		"expressao":   expressao,
	}
}

func TestValidateScoresBounds(t *testing.T) {
	testCases := []struct {
		name    string
		payload map[string]interface{}
		wantErr bool
	}{
		{"all at lower bound", studentPayload(0.0, 0.0, 0.0, 0.0), false},
		{"all at upper bound", studentPayload(5.0, 5.0, 5.0, 5.0), false},
		{"one unit below lower bound", studentPayload(-1.0, 3.0, 3.0, 3.0), true},
		{"one unit above upper bound", studentPayload(3.0, 6.0, 3.0, 3.0), true},
		{"non numeric value", studentPayload("cinco", 3.0, 3.0, 3.0), true},
		{"boolean value", studentPayload(true, 3.0, 3.0, 3.0), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateScores(tc.payload, StudentRubric)
			if tc.wantErr && err == nil {
				t.Errorf("Expected validation error, got none")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected success, got error: %v", err)
			}
		})
	}
}

func TestValidateScoresMissingCategory(t *testing.T) {
	payload := studentPayload(3.0, 3.0, 3.0, 3.0)
	delete(payload, "compreensao")

	_, err := ValidateScores(payload, StudentRubric)
	if err == nil {
		t.Fatal("Expected error for missing category, got none")
	}
	want := "Categoria obrigatória ausente: compreensao"
	if err.Error() != want {
		t.Errorf("Expected message %q, got %q", want, err.Error())
	}
}

func TestValidateScoresTruncatesAndDropsExtras(t *testing.T) {
	payload := studentPayload(4.9, 3.0, 3.0, 3.0)
	payload["postura"] = 5.0

	scores, err := ValidateScores(payload, StudentRubric)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if scores["fluencia"] != 4 {
		t.Errorf("Expected 4.9 to truncate to 4, got %d", scores["fluencia"])
	}
	if len(scores) != 4 {
		t.Errorf("Expected exactly 4 categories, got %d", len(scores))
	}
	if _, ok := scores["postura"]; ok {
		t.Error("Expected extra category to be dropped")
	}
}

func TestValidateEvaluatorReviewScores(t *testing.T) {
	payload := map[string]interface{}{
		"conhecimento_libras": 5.0,
		"didatica":            0.0,
		"feedback":            3.0,
	}
	scores, err := ValidateScores(payload, EvaluatorReviewRubric)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 categories, got %d", len(scores))
	}
}

func TestClassifyLevelBoundaries(t *testing.T) {
	testCases := []struct {
		average float64
		want    string
	}{
		{0, "iniciante"},
		{1.49, "iniciante"},
		{1.5, "basico"},
		{2.74, "basico"},
		{2.75, "intermediario"},
		{3.74, "intermediario"},
		{3.75, "avancado"},
		{4.49, "avancado"},
		{4.5, "fluente"},
		{5.0, "fluente"},
		{5.5, "iniciante"}, // outside the scale, fallback
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := ClassifyLevel(tc.average); got != tc.want {
				t.Errorf("ClassifyLevel(%v) expected %q, got %q", tc.average, tc.want, got)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	scores := map[string]int{"fluencia": 1, "vocabulario": 2, "compreensao": 3, "expressao": 4}
	if got := Average(scores); got != 2.5 {
		t.Errorf("Expected average 2.5, got %v", got)
	}
	if got := Average(map[string]int{}); got != 0 {
		t.Errorf("Expected empty average 0, got %v", got)
	}
}
