// Package stats computes aggregate views over expenses.
//
// All functions are pure and do not modify their input.
package stats

import (
	"time"

	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Totals maps a key to the summed amount of all expenses with that key.
type Totals map[string]decimal.Decimal

// Sum returns the sum of all values.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t {
		sum = sum.Add(v)
	}
	return sum
}

// TotalSpent returns the sum of all amounts.
func TotalSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory sums the amounts per category. Categories without
// expenses are not contained.
func ByCategory(expenses []models.Expense) Totals {
	totals := make(Totals)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// ByMonth sums the amounts per month, keyed by labels like "Jan 2024".
func ByMonth(expenses []models.Expense) Totals {
	totals := make(Totals)
	for _, e := range expenses {
		label := e.Date.Month().Label()
		totals[label] = totals[label].Add(e.Amount)
	}
	return totals
}

// MostExpensive returns the expense with the highest amount. If several
// expenses share the highest amount, the first one is returned.
//
// ok is false for an empty list.
func MostExpensive(expenses []models.Expense) (expense models.Expense, ok bool) {
	for i, e := range expenses {
		if i == 0 || e.Amount.GreaterThan(expense.Amount) {
			expense = e
		}
	}
	return expense, len(expenses) > 0
}

// CurrentMonthByCategory sums the amounts per category for all expenses
// dated from the first day of now's month up to and including now's day.
func CurrentMonthByCategory(expenses []models.Expense, now time.Time) Totals {
	today := types.DateOf(now)
	first := today.Month().FirstDay()

	totals := make(Totals)
	for _, e := range expenses {
		if e.Date.Before(first) || e.Date.After(today) {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// TopCategory returns the category with the highest total. Ties are
// broken by name so that the result is stable.
func TopCategory(expenses []models.Expense) (string, bool) {
	totals := ByCategory(expenses)
	if len(totals) == 0 {
		return "", false
	}

	names := maps.Keys(totals)
	slices.Sort(names)

	top := names[0]
	for _, name := range names[1:] {
		if totals[name].GreaterThan(totals[top]) {
			top = name
		}
	}

	return top, true
}

// MonthTotal is a single point of the monthly trend.
type MonthTotal struct {
	Month  string          `json:"month" example:"Jan 2024"`
	Amount decimal.Decimal `json:"amount" example:"412.70"`
}

// MonthlyTrend returns the totals of the n most recent months that have
// expenses, oldest first.
func MonthlyTrend(expenses []models.Expense, n int) []MonthTotal {
	totals := make(map[types.Month]decimal.Decimal)
	for _, e := range expenses {
		m := e.Date.Month()
		totals[m] = totals[m].Add(e.Amount)
	}

	months := maps.Keys(totals)
	slices.SortFunc(months, func(a, b types.Month) int {
		return time.Time(a).Compare(time.Time(b))
	})

	if n >= 0 && len(months) > n {
		months = months[len(months)-n:]
	}

	trend := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		trend = append(trend, MonthTotal{Month: m.Label(), Amount: totals[m]})
	}
	return trend
}

// RecentCategories returns up to n distinct categories in the order
// they first occur in expenses.
func RecentCategories(expenses []models.Expense, n int) []string {
	categories := make([]string, 0, n)
	for _, e := range expenses {
		if len(categories) == n {
			break
		}

		if !slices.Contains(categories, e.Category) {
			categories = append(categories, e.Category)
		}
	}
	return categories
}
