// Package planner compares budgets against actual spending.
package planner

import (
	"errors"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/stats"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrSortInvalid = errors.New("budgets can only be sorted by amount, spent or remaining")

// Status classifies how much of a budget has been used.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// Emoji returns the icon displayed for the status.
func (s Status) Emoji() string {
	switch s {
	case StatusExceeded:
		return "🚨"
	case StatusWarning:
		return "⚠️"
	case StatusGood:
		return "✅"
	}
	return "📊"
}

// StatusOf returns the percentage of the budget that has been spent
// and the resulting status.
//
// For budgets with an amount of zero, any spending exceeds the
// budget (100 percent) and no spending is good (0 percent).
func StatusOf(budget models.Budget, spent decimal.Decimal) (decimal.Decimal, Status) {
	if budget.Amount.IsZero() {
		if spent.IsPositive() {
			return hundred, StatusExceeded
		}
		return decimal.Zero, StatusGood
	}

	percentage := spent.Div(budget.Amount).Mul(hundred)
	return percentage, classify(percentage)
}

func classify(percentage decimal.Decimal) Status {
	if percentage.GreaterThanOrEqual(hundred) {
		return StatusExceeded
	}

	if percentage.GreaterThanOrEqual(warningThreshold) {
		return StatusWarning
	}

	return StatusGood
}

// TotalBudget returns the sum of all budget amounts.
//
// Amounts are summed regardless of their period, a weekly and a
// yearly budget are added as they are.
func TotalBudget(budgets []models.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Amount)
	}
	return total
}

// SortField selects the order of the allocation rows.
type SortField string

const (
	SortAmount    SortField = "amount"
	SortSpent     SortField = "spent"
	SortRemaining SortField = "remaining"
)

// Valid reports if the field is a known sort field.
func (f SortField) Valid() bool {
	return f == SortAmount || f == SortSpent || f == SortRemaining
}

// Row is the comparison of one budget with the current month's spending.
type Row struct {
	Budget     models.Budget   `json:"budget"`
	Spent      decimal.Decimal `json:"spent" example:"312.45"`     // Spent in the budget's category this month
	Remaining  decimal.Decimal `json:"remaining" example:"87.55"`  // Budget amount minus spent, negative when exceeded
	Percentage decimal.Decimal `json:"percentage" example:"78.11"` // Percentage of the budget spent, capped at 100
	Status     Status          `json:"status" example:"good"`
	Emoji      string          `json:"emoji"`                   // Icon of the budget's category
	Color      string          `json:"color" example:"#FF8042"` // Color of the budget's category
}

// Summary compares all budgets of a user against the current month's spending.
type Summary struct {
	TotalBudget  decimal.Decimal `json:"totalBudget" example:"1200"`   // Sum of all budget amounts, regardless of period
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"845.12"`  // Sum of all spending this month, including categories without budget
	Remaining    decimal.Decimal `json:"remaining" example:"354.88"`   // TotalBudget minus TotalSpent
	PercentSpent decimal.Decimal `json:"percentSpent" example:"70.43"` // TotalSpent in percent of TotalBudget, 0 without budgets
	Status       Status          `json:"status" example:"good"`        // Status of the whole plan
	Budgets      []Row           `json:"budgets"`                      // One row per budget in stored order
	Allocation   []Row           `json:"allocation"`                   // The rows sorted descending by the requested field
}

// Summarize builds the summary for budgets and the spending per category
// of the current month.
func Summarize(budgets []models.Budget, spending stats.Totals, sortBy SortField) (Summary, error) {
	if sortBy == "" {
		sortBy = SortAmount
	}

	if !sortBy.Valid() {
		return Summary{}, ErrSortInvalid
	}

	s := Summary{
		TotalBudget: TotalBudget(budgets),
		TotalSpent:  spending.Sum(),
		Budgets:     make([]Row, 0, len(budgets)),
	}
	s.Remaining = s.TotalBudget.Sub(s.TotalSpent)

	s.PercentSpent = decimal.Zero
	if s.TotalBudget.IsPositive() {
		s.PercentSpent = s.TotalSpent.Div(s.TotalBudget).Mul(hundred)
	}
	s.Status = classify(s.PercentSpent)

	for _, b := range budgets {
		spent := spending[b.Category]
		percentage, status := StatusOf(b, spent)
		category, _ := models.CategoryByName(b.Category)

		s.Budgets = append(s.Budgets, Row{
			Budget:     b,
			Spent:      spent,
			Remaining:  b.Amount.Sub(spent),
			Percentage: decimal.Min(percentage, hundred),
			Status:     status,
			Emoji:      category.Emoji,
			Color:      category.Color,
		})
	}

	s.Allocation = slices.Clone(s.Budgets)
	slices.SortStableFunc(s.Allocation, func(a, b Row) int {
		return sortKey(b, sortBy).Cmp(sortKey(a, sortBy))
	})

	return s, nil
}

func sortKey(r Row, field SortField) decimal.Decimal {
	switch field {
	case SortSpent:
		return r.Spent
	case SortRemaining:
		return r.Remaining
	}
	return r.Budget.Amount
}
