// Package repository implements the collections of the expense tracker
// on top of a storage.Store.
//
// Each repository is the only writer of its keys.
package repository

import (
	"context"
	"time"

	"github.com/envelope-zero/expense-tracker/pkg/models"
)

// Keys used in the store. They are compatible with the local storage
// layout of the web application. Expenses of all users share one key,
// budgets are stored per user.
const (
	KeyExpenses     = "expenses"
	KeyBudgetPrefix = "budgets_"
	keySession      = "expenseTrackerUser"
	keyTheme        = "appTheme"
)

// Clock returns the current time.
type Clock func() time.Time

// Expenses manages the expense collection.
type Expenses interface {
	ListForUser(ctx context.Context, userID string) ([]models.Expense, error)
	Create(ctx context.Context, userID string, editable models.ExpenseEditable) (models.Expense, error)
	Delete(ctx context.Context, id string) error
}

// Budgets manages the budget collections of all users.
type Budgets interface {
	List(ctx context.Context, userID string) ([]models.Budget, error)
	Create(ctx context.Context, userID string, editable models.BudgetEditable) (models.Budget, error)
	Update(ctx context.Context, userID string, id int64, editable models.BudgetEditable) (models.Budget, error)
	Delete(ctx context.Context, userID string, id int64) error
}

// Sessions holds the currently logged in user.
type Sessions interface {
	Current(ctx context.Context) (models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// Preferences holds user interface preferences.
type Preferences interface {
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, theme models.Theme) error
}
