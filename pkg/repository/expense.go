package repository

import (
	"context"
	"strconv"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// ExpenseRepository stores all expenses of all users in one collection.
// Expenses are partitioned by their UserID field.
type ExpenseRepository struct {
	store storage.Store
	now   Clock
}

var _ Expenses = (*ExpenseRepository)(nil)

func NewExpenseRepository(store storage.Store, now Clock) *ExpenseRepository {
	return &ExpenseRepository{
		store: store,
		now:   now,
	}
}

// ListForUser returns the expenses of a user in stored order, which
// is newest first.
func (r *ExpenseRepository) ListForUser(ctx context.Context, userID string) ([]models.Expense, error) {
	all, err := storage.ReadArray[models.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0)
	for _, e := range all {
		if e.UserID == userID {
			expenses = append(expenses, e)
		}
	}

	return expenses, nil
}

// Create validates and stores a new expense for the user.
//
// The ID is derived from the current time in milliseconds. If that ID
// is already in use, the next free millisecond is used.
func (r *ExpenseRepository) Create(ctx context.Context, userID string, editable models.ExpenseEditable) (models.Expense, error) {
	if userID == "" {
		return models.Expense{}, models.ErrExpenseUserMissing
	}

	editable = editable.Normalize()
	if err := editable.Validate(); err != nil {
		return models.Expense{}, err
	}

	all, err := storage.ReadArray[models.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return models.Expense{}, err
	}

	now := r.now()
	millis := now.UnixMilli()
	id := strconv.FormatInt(millis, 10)
	for slices.ContainsFunc(all, func(e models.Expense) bool { return e.ID == id }) {
		millis++
		id = strconv.FormatInt(millis, 10)
	}

	expense := models.Expense{
		ID:              id,
		UserID:          userID,
		CreatedAt:       now.UTC(),
		ExpenseEditable: editable,
	}

	// New expenses go first
	all = slices.Insert(all, 0, expense)
	if err := storage.WriteArray(ctx, r.store, KeyExpenses, all); err != nil {
		return models.Expense{}, err
	}

	log.Debug().Str("id", expense.ID).Str("user", userID).Msg("created expense")
	return expense, nil
}

// Delete removes the expense with the given ID.
//
// Deleting an expense that does not exist is not an error.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	all, err := storage.ReadArray[models.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(all), func(e models.Expense) bool { return e.ID == id })
	if len(remaining) == len(all) {
		log.Debug().Str("id", id).Msg("expense to delete does not exist")
		return nil
	}

	return storage.WriteArray(ctx, r.store, KeyExpenses, remaining)
}
