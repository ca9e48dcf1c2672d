package stats

import (
	"time"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	trendMonths      = 6
	recentCategories = 3
)

// Overview bundles all statistics for a user's expenses.
type Overview struct {
	TotalSpent             decimal.Decimal `json:"totalSpent" example:"1532.12"`                      // Sum of all expenses
	Count                  int             `json:"count" example:"42"`                                // Number of expenses
	Categories             Totals          `json:"categories"`                                        // Sum per category
	MonthlyTotals          Totals          `json:"monthlyTotals"`                                     // Sum per month, keyed by "Jan 2024" labels
	MostExpensive          *models.Expense `json:"mostExpensive"`                                     // The largest expense, null when there are no expenses
	TopCategory            string          `json:"topCategory" example:"Housing"`                     // Category with the highest sum, empty when there are no expenses
	MonthlyTrend           []MonthTotal    `json:"monthlyTrend"`                                      // The last six months with expenses, oldest first
	CurrentMonthByCategory Totals          `json:"currentMonthByCategory"`                            // Sum per category for the current month up to today
	RecentCategories       []string        `json:"recentCategories" example:"Travel,Food & Dining"`   // Up to three categories used most recently
}

// Summarize computes the overview for expenses at the time now.
func Summarize(expenses []models.Expense, now time.Time) Overview {
	o := Overview{
		TotalSpent:             TotalSpent(expenses),
		Count:                  len(expenses),
		Categories:             ByCategory(expenses),
		MonthlyTotals:          ByMonth(expenses),
		MonthlyTrend:           MonthlyTrend(expenses, trendMonths),
		CurrentMonthByCategory: CurrentMonthByCategory(expenses, now),
		RecentCategories:       RecentCategories(expenses, recentCategories),
	}

	if e, ok := MostExpensive(expenses); ok {
		o.MostExpensive = &e
	}

	o.TopCategory, _ = TopCategory(expenses)
	return o
}
