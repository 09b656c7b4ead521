package repository

import "github.com/ilacftemp/app-libras/internal/models"

func (s *Store) AddUser(name, role string, bio *string, availability []string, approved bool) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if availability == nil {
		availability = []string{}
	}
	s.nextUserID++
	user := &models.User{
		ID:           s.nextUserID,
		Name:         name,
		Role:         role,
		Bio:          bio,
		Availability: availability,
		Approved:     approved,
	}
	s.users = append(s.users, user)
	return cloneUser(user)
}

// ListUsers returns users in insertion order; an empty role means no filter.
func (s *Store) ListUsers(role string) []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []*models.User{}
	for _, user := range s.users {
		if role != "" && user.Role != role {
			continue
		}
		users = append(users, cloneUser(user))
	}
	return users
}

func (s *Store) GetUser(id int64) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(id)
	if user == nil {
		return nil
	}
	return cloneUser(user)
}

// UpdateUser applies every non-nil patch field and returns the updated
// user, or nil when the id is unknown.
func (s *Store) UpdateUser(id int64, patch models.UserPatch) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(id)
	if user == nil {
		return nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.Availability != nil {
		user.Availability = *patch.Availability
	}
	if patch.Approved != nil {
		user.Approved = *patch.Approved
	}
	return cloneUser(user)
}

func (s *Store) findUser(id int64) *models.User {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func cloneUser(user *models.User) *models.User {
	clone := *user
	return &clone
}
