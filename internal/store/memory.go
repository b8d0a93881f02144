package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"spendlog/internal/models"
)

// Memory is an in-process Store with the same semantics as Mongo. It backs
// handler and router tests so they can exercise full request flows without a
// running database.
type Memory struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by hex id
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{users: make(map[string]*models.User)}
}

func (m *Memory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Memory) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (m *Memory) CreateUser(_ context.Context, name, email, hashedPassword string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &models.User{
		ID:       bson.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Expenses: []models.Expense{},
	}
	m.users[user.ID.Hex()] = user
	return cloneUser(user), nil
}

func (m *Memory) AppendExpense(_ context.Context, userID string, expense models.Expense) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	user.Expenses = append(user.Expenses, expense)
	return cloneUser(user), nil
}

func (m *Memory) RemoveExpense(_ context.Context, userID, expenseID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	kept := user.Expenses[:0]
	for _, expense := range user.Expenses {
		if expense.ID != expenseID {
			kept = append(kept, expense)
		}
	}
	user.Expenses = kept
	return cloneUser(user), nil
}

// cloneUser copies the document so callers cannot mutate stored state.
func cloneUser(user *models.User) *models.User {
	clone := *user
	clone.Expenses = make([]models.Expense, len(user.Expenses))
	copy(clone.Expenses, user.Expenses)
	return &clone
}
