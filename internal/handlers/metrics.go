package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for created entities, labeled by collection
	entityCreations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libras_entity_creations_total",
			Help: "Total number of created records per collection",
		},
		[]string{"entity"},
	)

	// Counter for graded quiz submissions
	submissionsGraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "libras_quiz_submissions_graded_total",
			Help: "Total number of graded quiz submissions",
		},
	)

	// Counter for assessment outcomes, labeled by classified level
	assessmentLevels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libras_assessment_levels_total",
			Help: "Skill assessments created per classified level",
		},
		[]string{"level"},
	)

	// Counter for rejected requests, labeled by operation
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libras_validation_failures_total",
			Help: "Requests rejected by input validation",
		},
		[]string{"operation"},
	)
)
