// Package store persists user documents with their embedded expenses.
package store

import (
	"context"

	"spendlog/internal/models"
)

// Store is the persistence contract for user accounts. All expense mutations
// go through the owning user document.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error)

	// AppendExpense pushes an expense onto the user's list and returns the
	// updated document.
	AppendExpense(ctx context.Context, userID string, expense models.Expense) (*models.User, error)

	// RemoveExpense removes the expense with the given id, if present, and
	// returns the updated document. Removing an unknown expense id is a no-op.
	RemoveExpense(ctx context.Context, userID, expenseID string) (*models.User, error)
}
