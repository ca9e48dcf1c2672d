package repository_test

import (
	"context"
	"time"

	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/repository"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/shopspring/decimal"
)

func food(amount int64) models.ExpenseEditable {
	return models.ExpenseEditable{
		Amount:      decimal.NewFromInt(amount),
		Category:    "Food & Dining",
		Date:        types.NewDate(2024, time.January, 5),
		Description: "Groceries",
	}
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	before, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)
	suite.Require().Len(before, 0)

	expense, err := r.Create(ctx, "user_1", food(50))
	suite.Require().Nil(err)

	suite.Assert().Equal("1706184000000", expense.ID)
	suite.Assert().Equal("user_1", expense.UserID)
	suite.Assert().Equal(suite.now, expense.CreatedAt)
	suite.Assert().True(decimal.NewFromInt(50).Equal(expense.Amount))

	after, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)
	suite.Require().Len(after, 1)
	suite.Assert().Equal(expense, after[0])
}

func (suite *TestSuiteStandard) TestExpenseCreateUniqueIDs() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		expense, err := r.Create(ctx, "user_1", food(int64(i+1)))
		suite.Require().Nil(err)
		suite.Assert().False(ids[expense.ID], "ID %s was used twice", expense.ID)
		ids[expense.ID] = true
	}
}

func (suite *TestSuiteStandard) TestExpenseListNewestFirst() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	first, err := r.Create(ctx, "user_1", food(1))
	suite.Require().Nil(err)
	suite.now = suite.now.Add(time.Minute)
	second, err := r.Create(ctx, "user_1", food(2))
	suite.Require().Nil(err)

	expenses, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{second.ID, first.ID}, []string{expenses[0].ID, expenses[1].ID})
}

func (suite *TestSuiteStandard) TestExpenseListPartitionsByUser() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	_, err := r.Create(ctx, "user_1", food(1))
	suite.Require().Nil(err)
	_, err = r.Create(ctx, "user_2", food(2))
	suite.Require().Nil(err)

	expenses, err := r.ListForUser(ctx, "user_2")
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("user_2", expenses[0].UserID)
}

func (suite *TestSuiteStandard) TestExpenseCreateValidation() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	noCategory := food(5)
	noCategory.Category = ""

	tests := []struct {
		name     string
		user     string
		editable models.ExpenseEditable
		err      error
	}{
		{"Zero amount", "user_1", food(0), models.ErrExpenseAmountNotPositive},
		{"No category", "user_1", noCategory, models.ErrExpenseCategoryMissing},
		{"No user", "", food(5), models.ErrExpenseUserMissing},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := r.Create(ctx, tt.user, tt.editable)
			suite.Assert().ErrorIs(err, tt.err)
			suite.Assert().ErrorIs(err, models.ErrValidation)
		})
	}

	// No partial effect
	_, err := suite.store.Get(ctx, "expenses")
	suite.Assert().ErrorIs(err, storage.ErrKeyNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDeleteIdempotent() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(suite.store, suite.clock())

	keep, err := r.Create(ctx, "user_1", food(1))
	suite.Require().Nil(err)
	suite.now = suite.now.Add(time.Second)
	remove, err := r.Create(ctx, "user_1", food(2))
	suite.Require().Nil(err)

	suite.Require().Nil(r.Delete(ctx, remove.ID))
	once, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)

	suite.Require().Nil(r.Delete(ctx, remove.ID))
	twice, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)

	suite.Assert().Equal(once, twice)
	suite.Assert().Equal([]models.Expense{keep}, twice)
}

func (suite *TestSuiteStandard) TestExpenseStorageError() {
	ctx := context.Background()
	r := repository.NewExpenseRepository(brokenStore{}, suite.clock())

	_, err := r.ListForUser(ctx, "user_1")
	suite.Assert().ErrorIs(err, storage.ErrStorage)

	_, err = r.Create(ctx, "user_1", food(1))
	suite.Assert().ErrorIs(err, storage.ErrStorage)

	suite.Assert().ErrorIs(r.Delete(ctx, "1"), storage.ErrStorage)
}

func (suite *TestSuiteStandard) TestExpenseReadsStoredLayout() {
	ctx := context.Background()
	err := suite.store.Set(ctx, "expenses", []byte(`[
		{"id":"1704451200000","amount":30,"category":"Transportation","date":"2024-01-20","description":"","userId":"user_1","createdAt":"2024-01-20T09:00:00.000Z"}
	]`))
	suite.Require().Nil(err)

	r := repository.NewExpenseRepository(suite.store, suite.clock())
	expenses, err := r.ListForUser(ctx, "user_1")
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("Transportation", expenses[0].Category)
	suite.Assert().Equal("2024-01-20", expenses[0].Date.String())
}
