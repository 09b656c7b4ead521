package repository

import "github.com/ilacftemp/app-libras/internal/models"

func (s *Store) CreateSession(studentID, instructorID int64, scheduledFor string, notes *string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSessionID++
	session := &models.Session{
		ID:           s.nextSessionID,
		StudentID:    studentID,
		InstructorID: instructorID,
		ScheduledFor: scheduledFor,
		Status:       models.SessionScheduled,
		Notes:        notes,
	}
	s.sessions = append(s.sessions, session)
	return cloneSession(session)
}

// ListSessions returns sessions where userID matches either side of the
// booking; 0 means no filter.
func (s *Store) ListSessions(userID int64) []*models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := []*models.Session{}
	for _, session := range s.sessions {
		if userID != 0 && session.StudentID != userID && session.InstructorID != userID {
			continue
		}
		sessions = append(sessions, cloneSession(session))
	}
	return sessions
}

func (s *Store) GetSession(id int64) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.findSession(id)
	if session == nil {
		return nil
	}
	return cloneSession(session)
}

// UpdateSessionStatus overwrites the status unconditionally: any transition
// is allowed.
func (s *Store) UpdateSessionStatus(id int64, status string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.findSession(id)
	if session == nil {
		return nil
	}
	session.Status = status
	return cloneSession(session)
}

func (s *Store) findSession(id int64) *models.Session {
	for _, session := range s.sessions {
		if session.ID == id {
			return session
		}
	}
	return nil
}

func cloneSession(session *models.Session) *models.Session {
	clone := *session
	return &clone
}
