// Package form implements the two step flow for recording an expense.
//
// A category is selected first, then amount, date and description are
// entered. Submitting stores the expense and starts over.
package form

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/shopspring/decimal"
)

var ErrWrongStep = errors.New("this action is not possible in the current step of the form")

// Step is a step of the form.
type Step int

const (
	StepSelectCategory Step = iota + 1
	StepEnterDetails
)

func (s Step) String() string {
	switch s {
	case StepSelectCategory:
		return "select-category"
	case StepEnterDetails:
		return "enter-details"
	}
	return "unknown"
}

// Creator stores new expenses.
type Creator interface {
	Create(ctx context.Context, userID string, editable models.ExpenseEditable) (models.Expense, error)
}

// Draft is the data entered so far. Amount is kept as typed by the user.
type Draft struct {
	Category    string
	Amount      string
	Date        types.Date
	Description string
}

// Form is the state of the expense form for one user.
type Form struct {
	userID  string
	creator Creator
	now     func() time.Time

	step  Step
	draft Draft
}

// New returns a form in its initial state with today's date preset.
func New(userID string, creator Creator, now func() time.Time) *Form {
	f := &Form{
		userID:  userID,
		creator: creator,
		now:     now,
	}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.step = StepSelectCategory
	f.draft = Draft{Date: types.DateOf(f.now())}
}

// Step returns the current step.
func (f *Form) Step() Step {
	return f.step
}

// Draft returns the data entered so far.
func (f *Form) Draft() Draft {
	return f.draft
}

// SelectCategory sets the category without changing the step.
func (f *Form) SelectCategory(category string) {
	f.draft.Category = strings.TrimSpace(category)
}

// Next advances to the details step. A category must be selected.
func (f *Form) Next() error {
	if f.step != StepSelectCategory {
		return ErrWrongStep
	}

	if f.draft.Category == "" {
		return models.ErrExpenseCategoryMissing
	}

	f.step = StepEnterDetails
	return nil
}

// QuickSelect selects a category and advances to the details step.
func (f *Form) QuickSelect(category string) error {
	f.SelectCategory(category)
	return f.Next()
}

// Back returns to the category selection. The entered data is kept.
func (f *Form) Back() {
	f.step = StepSelectCategory
}

// Change returns to the category selection to pick another category
// for the draft. Like Back, it is possible from every step.
func (f *Form) Change() {
	f.step = StepSelectCategory
}

// SetDetails updates the fields of the details step.
func (f *Form) SetDetails(amount string, date types.Date, description string) error {
	if f.step != StepEnterDetails {
		return ErrWrongStep
	}

	f.draft.Amount = amount
	f.draft.Date = date
	f.draft.Description = description
	return nil
}

// Submit validates the draft and stores the expense.
//
// On success the form starts over with an empty draft. On failure
// step and draft are left unchanged.
func (f *Form) Submit(ctx context.Context) (models.Expense, error) {
	if f.step != StepEnterDetails {
		return models.Expense{}, ErrWrongStep
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(f.draft.Amount))
	if err != nil {
		return models.Expense{}, models.ErrExpenseAmountNotPositive
	}

	expense, err := f.creator.Create(ctx, f.userID, models.ExpenseEditable{
		Amount:      amount,
		Category:    f.draft.Category,
		Date:        f.draft.Date,
		Description: f.draft.Description,
	})
	if err != nil {
		return models.Expense{}, err
	}

	f.reset()
	return expense, nil
}
