package service

import (
	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
)

type UserService struct {
	Store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{Store: store}
}

func (s *UserService) CreateUser(name, role string, bio *string, availability []string, approved bool) *models.User {
	return s.Store.AddUser(name, role, bio, availability, approved)
}

func (s *UserService) ListUsers(role string) []*models.User {
	return s.Store.ListUsers(role)
}

func (s *UserService) GetUser(id int64) *models.User {
	return s.Store.GetUser(id)
}

func (s *UserService) UpdateUser(id int64, patch models.UserPatch) *models.User {
	return s.Store.UpdateUser(id, patch)
}
