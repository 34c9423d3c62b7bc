// Package repotest provides an in-memory journal store for tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mirror-backend/internal/journal/domain"
)

// Store implements repository.UserRepository and repository.LogRepository
// in memory. Every created log gets a strictly later created_at.
type Store struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	logs   []*domain.Log
	nextID int64
	clock  time.Time

	UserInserts int
	// Err, when set, is returned by every call
	Err error
}

// fail mirrors a database driver: a done context fails the call
func (s *Store) fail(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	return ctx.Err()
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		users: make(map[int64]*domain.User),
		clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddUser seeds a user
func (s *Store) AddUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.ID] = &cp
}

// AddLogs seeds logs for userID in the given (chronological) order
func (s *Store) AddLogs(userID int64, texts ...string) {
	for _, text := range texts {
		_, _ = s.CreateWithUser(context.Background(), domain.PlaceholderUser(userID), &domain.Log{Text: text})
	}
}

// Users returns the number of stored users
func (s *Store) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Log returns a copy of the stored log with id
func (s *Store) Log(id int64) (domain.Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.logs {
		if l.ID == id {
			return *l, true
		}
	}
	return domain.Log{}, false
}

func (s *Store) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(ctx); err != nil {
		return nil, err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) CreateWithUser(ctx context.Context, owner *domain.User, log *domain.Log) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(ctx); err != nil {
		return false, err
	}

	created := false
	if _, ok := s.users[owner.ID]; !ok {
		cp := *owner
		s.users[owner.ID] = &cp
		s.UserInserts++
		created = true
	}

	s.nextID++
	s.clock = s.clock.Add(time.Minute)
	log.ID = s.nextID
	log.UserID = owner.ID
	log.CreatedAt = s.clock

	cp := *log
	s.logs = append(s.logs, &cp)
	return created, nil
}

func (s *Store) UpdateEnrichment(ctx context.Context, id int64, summary, sentiment *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(ctx); err != nil {
		return err
	}
	for _, l := range s.logs {
		if l.ID == id {
			l.Summary = summary
			l.Sentiment = sentiment
			return nil
		}
	}
	return fmt.Errorf("log %d not found", id)
}

func (s *Store) FindRecentByUserID(ctx context.Context, userID int64, limit int) ([]*domain.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(ctx); err != nil {
		return nil, err
	}

	var out []*domain.Log
	for _, l := range s.logs {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
