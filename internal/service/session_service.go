package service

import (
	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
)

type SessionService struct {
	Store *repository.Store
}

func NewSessionService(store *repository.Store) *SessionService {
	return &SessionService{Store: store}
}

func (s *SessionService) CreateSession(studentID, instructorID int64, scheduledFor string, notes *string) *models.Session {
	return s.Store.CreateSession(studentID, instructorID, scheduledFor, notes)
}

func (s *SessionService) ListSessions(userID int64) []*models.Session {
	return s.Store.ListSessions(userID)
}

func (s *SessionService) UpdateSessionStatus(id int64, status string) *models.Session {
	return s.Store.UpdateSessionStatus(id, status)
}
