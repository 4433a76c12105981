package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"expenso/internal/models"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store down")

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	fail  bool
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	s.users[user.ID] = user
	return nil
}

// memExpenseStore mimics the real store: it assigns id and created_at on
// insert and returns rows newest first.
type memExpenseStore struct {
	mu       sync.Mutex
	expenses []*models.Expense
	clock    time.Time
	fail     bool
}

func newMemExpenseStore() *memExpenseStore {
	return &memExpenseStore{clock: time.Now()}
}

func (s *memExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	expense.ID = uuid.New()
	s.clock = s.clock.Add(time.Second)
	expense.CreatedAt = s.clock
	stored := *expense
	s.expenses = append(s.expenses, &stored)
	return nil
}

func (s *memExpenseStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	var out []*models.Expense
	for _, e := range s.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memExpenseStore) Delete(_ context.Context, id, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return 0, errStoreDown
	}
	for i, e := range s.expenses {
		if e.ID == id && e.UserID == userID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memExpenseStore) SumByCategory(_ context.Context, userID uuid.UUID) ([]models.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	totals := make(map[models.ExpenseCategory]float64)
	for _, e := range s.expenses {
		if e.UserID == userID {
			totals[e.Category] += e.Amount
		}
	}
	var out []models.CategoryTotal
	for c, t := range totals {
		out = append(out, models.CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out, nil
}

// stubClassifier returns a fixed label, or an error when set.
type stubClassifier struct {
	label string
	err   error
	calls int
}

func (c *stubClassifier) Classify(_ context.Context, _ string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.label, nil
}
