package models

type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	MediaURL    *string  `json:"media_url"`
}

type Quiz struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Level     string         `json:"level"`
	Questions []QuizQuestion `json:"questions"`
	CreatedBy *int64         `json:"created_by"`
}
