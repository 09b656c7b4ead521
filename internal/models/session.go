package models

const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

type Session struct {
	ID           int64   `json:"id"`
	StudentID    int64   `json:"student_id"`
	InstructorID int64   `json:"instructor_id"`
	ScheduledFor string  `json:"scheduled_for"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

func ValidSessionStatus(status string) bool {
	switch status {
	case SessionScheduled, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}
