package testkit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/domain/repository"
	"github.com/oksasatya/campus-exchange/internal/domain/repository/repositoryfakes"
)

// MemoryStore keeps users in memory and backs a FakeUserRepository.
// Stored values are copied in and out.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func NewMemoryStore(seed ...*entity.User) *MemoryStore {
	s := &MemoryStore{users: map[string]entity.User{}}
	for _, u := range seed {
		s.users[u.ID] = *u
	}
	return s
}

// Get returns a copy of the stored user.
func (s *MemoryStore) Get(id string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return &u, ok
}

// Delete removes a user, simulating a record that vanished mid-request.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// Wire installs the store as the stub behaviour of repo.
func (s *MemoryStore) Wire(repo *repositoryfakes.FakeUserRepository) {
	repo.CreateCalls(s.create)
	repo.GetByIDCalls(s.getByID)
	repo.GetByEmailCalls(s.getByEmail)
	repo.UpdateCalls(s.update)
	repo.UpdateVerificationStatusCalls(s.updateVerificationStatus)
}

func (s *MemoryStore) create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = strings.ToLower(u.Email)
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) getByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) getByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == strings.ToLower(email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemoryStore) update(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) updateVerificationStatus(_ context.Context, id string, status entity.VerificationStatus, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.VerificationStatus = status
	u.VerificationNotes = &notes
	u.IsVerified = status == entity.StatusVerified
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return nil
}
