package repository

import (
	"time"

	"github.com/ilacftemp/app-libras/internal/models"
)

func (s *Store) AddAssessment(studentID, evaluatorID int64, sessionID *int64, rubricScores map[string]int, comments *string, overallLevel string) *models.SkillAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAssessmentID++
	assessment := &models.SkillAssessment{
		ID:           s.nextAssessmentID,
		StudentID:    studentID,
		EvaluatorID:  evaluatorID,
		SessionID:    sessionID,
		RubricScores: rubricScores,
		Comments:     comments,
		OverallLevel: overallLevel,
		AssessedAt:   time.Now().UTC(),
	}
	s.assessments = append(s.assessments, assessment)
	return cloneAssessment(assessment)
}

func (s *Store) ListAssessments(studentID, evaluatorID int64) []*models.SkillAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	assessments := []*models.SkillAssessment{}
	for _, assessment := range s.assessments {
		if studentID != 0 && assessment.StudentID != studentID {
			continue
		}
		if evaluatorID != 0 && assessment.EvaluatorID != evaluatorID {
			continue
		}
		assessments = append(assessments, cloneAssessment(assessment))
	}
	return assessments
}

func (s *Store) GetAssessment(id int64) *models.SkillAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, assessment := range s.assessments {
		if assessment.ID == id {
			return cloneAssessment(assessment)
		}
	}
	return nil
}

func cloneAssessment(assessment *models.SkillAssessment) *models.SkillAssessment {
	clone := *assessment
	return &clone
}
