package repository

import (
	"context"
	"fmt"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// BudgetRepository stores one budget collection per user.
type BudgetRepository struct {
	store storage.Store
	now   Clock
}

var _ Budgets = (*BudgetRepository)(nil)

func NewBudgetRepository(store storage.Store, now Clock) *BudgetRepository {
	return &BudgetRepository{
		store: store,
		now:   now,
	}
}

// BudgetKey returns the storage key of the budgets of a user.
func BudgetKey(userID string) string {
	return KeyBudgetPrefix + userID
}

// List returns all budgets of the user in the order they were created.
func (r *BudgetRepository) List(ctx context.Context, userID string) ([]models.Budget, error) {
	return storage.ReadArray[models.Budget](ctx, r.store, BudgetKey(userID))
}

// Create validates and appends a new budget.
func (r *BudgetRepository) Create(ctx context.Context, userID string, editable models.BudgetEditable) (models.Budget, error) {
	editable, err := editable.Validate()
	if err != nil {
		return models.Budget{}, err
	}

	budgets, err := r.List(ctx, userID)
	if err != nil {
		return models.Budget{}, err
	}

	id := r.now().UnixMilli()
	for slices.ContainsFunc(budgets, func(b models.Budget) bool { return b.ID == id }) {
		id++
	}

	budget := models.Budget{
		ID:       id,
		Category: editable.Category,
		Amount:   *editable.Amount,
		Period:   editable.Period,
	}

	budgets = append(budgets, budget)
	if err := storage.WriteArray(ctx, r.store, BudgetKey(userID), budgets); err != nil {
		return models.Budget{}, err
	}

	log.Debug().Int64("id", budget.ID).Str("user", userID).Msg("created budget")
	return budget, nil
}

// Update replaces category, amount and period of an existing budget.
func (r *BudgetRepository) Update(ctx context.Context, userID string, id int64, editable models.BudgetEditable) (models.Budget, error) {
	editable, err := editable.Validate()
	if err != nil {
		return models.Budget{}, err
	}

	budgets, err := r.List(ctx, userID)
	if err != nil {
		return models.Budget{}, err
	}

	index := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.ID == id })
	if index == -1 {
		return models.Budget{}, fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
	}

	budgets[index].Category = editable.Category
	budgets[index].Amount = *editable.Amount
	budgets[index].Period = editable.Period

	if err := storage.WriteArray(ctx, r.store, BudgetKey(userID), budgets); err != nil {
		return models.Budget{}, err
	}

	return budgets[index], nil
}

// Delete removes a budget. Deleting a budget that does not exist is not an error.
func (r *BudgetRepository) Delete(ctx context.Context, userID string, id int64) error {
	budgets, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(budgets), func(b models.Budget) bool { return b.ID == id })
	if len(remaining) == len(budgets) {
		return nil
	}

	return storage.WriteArray(ctx, r.store, BudgetKey(userID), remaining)
}
