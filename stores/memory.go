package stores

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

// MemoryStore is a mutex-guarded in-memory backend used in tests and local
// development. It honours the same contracts as GormStore, including the
// create-conflict rule for daily logs.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
	meals  map[uint]models.Meal
	logs   map[uint]models.DailyLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[uint]models.User),
		meals: make(map[uint]models.Meal),
		logs:  make(map[uint]models.DailyLog),
	}
}

func (s *MemoryStore) allocID() uint {
	s.nextID++
	return s.nextID
}

// ---- users ----

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrConflict
		}
	}
	user.ID = s.allocID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

// ---- meals ----

func (s *MemoryStore) CreateMeal(_ context.Context, meal *models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meal.ID = s.allocID()
	meal.CreatedAt = time.Now()
	meal.UpdatedAt = meal.CreatedAt
	s.meals[meal.ID] = *meal
	return nil
}

func (s *MemoryStore) FindMealByID(_ context.Context, id uint) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStore) FindMealsByUserAndDate(_ context.Context, userID uint, date string) ([]models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Meal
	for _, m := range s.meals {
		if m.UserID == userID && m.Day() == date {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.Before(out[j].LoggedAt) })
	return out, nil
}

func (s *MemoryStore) UpdateMeal(_ context.Context, meal *models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meals[meal.ID]; !ok {
		return ErrNotFound
	}
	meal.UpdatedAt = time.Now()
	s.meals[meal.ID] = *meal
	return nil
}

func (s *MemoryStore) DeleteMeal(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meals[id]; !ok {
		return ErrNotFound
	}
	delete(s.meals, id)
	return nil
}

// ---- daily logs ----

func (s *MemoryStore) FindLogByUserAndDate(_ context.Context, userID uint, date string) (*models.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l := s.findLogLocked(userID, date); l != nil {
		out := *l
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) findLogLocked(userID uint, date string) *models.DailyLog {
	for id := range s.logs {
		l := s.logs[id]
		if l.UserID == userID && l.Date == date {
			return &l
		}
	}
	return nil
}

func (s *MemoryStore) CreateLog(_ context.Context, log *models.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findLogLocked(log.UserID, log.Date) != nil {
		return ErrConflict
	}
	log.ID = s.allocID()
	log.CreatedAt = time.Now()
	log.UpdatedAt = log.CreatedAt
	s.logs[log.ID] = *log
	return nil
}

func (s *MemoryStore) UpdateLog(_ context.Context, log *models.DailyLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.logs[log.ID]; !ok {
		return ErrNotFound
	}
	log.UpdatedAt = time.Now()
	s.logs[log.ID] = *log
	return nil
}

func (s *MemoryStore) DeleteLog(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.logs[id]; !ok {
		return ErrNotFound
	}
	delete(s.logs, id)
	return nil
}

func (s *MemoryStore) ListLogsByUserAndDateRange(_ context.Context, userID uint, from, to string) ([]models.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.DailyLog
	for _, l := range s.logs {
		if l.UserID == userID && l.Date >= from && l.Date <= to {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
