package service

import (
	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
	"github.com/ilacftemp/app-libras/internal/rubric"
)

type AssessmentService struct {
	Store *repository.Store
}

func NewAssessmentService(store *repository.Store) *AssessmentService {
	return &AssessmentService{Store: store}
}

// CreateAssessment validates the rubric payload against the student bands,
// derives the overall level from the score average and stores the record.
func (s *AssessmentService) CreateAssessment(studentID, evaluatorID int64, sessionID *int64, rubricPayload map[string]interface{}, comments *string) (*models.SkillAssessment, error) {
	scores, err := rubric.ValidateScores(rubricPayload, rubric.StudentRubric)
	if err != nil {
		return nil, err
	}
	overallLevel := rubric.ClassifyLevel(rubric.Average(scores))
	return s.Store.AddAssessment(studentID, evaluatorID, sessionID, scores, comments, overallLevel), nil
}

func (s *AssessmentService) ListAssessments(studentID, evaluatorID int64) []*models.SkillAssessment {
	return s.Store.ListAssessments(studentID, evaluatorID)
}
