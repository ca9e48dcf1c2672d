package v1

import (
	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/query"
	"github.com/shopspring/decimal"
)

type ExpenseResponse struct {
	Data models.Expense `json:"data"` // Data for the expense
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`                  // List of expenses
	Total decimal.Decimal  `json:"total" example:"52.49"` // Sum of the amounts of all listed expenses
}

type ExpenseQueryFilter struct {
	Category  string `form:"category" example:"Food & Dining"` // Exact category. "All" or empty for all categories
	Search    string `form:"search" example:"pizza"`           // Search text for description, category and amount
	FromDate  string `form:"fromDate" example:"2024-01-01"`    // First day of the date range
	UntilDate string `form:"untilDate" example:"2024-01-31"`   // Last day of the date range
	Sort      string `form:"sort" example:"amount"`            // Sort field. One of date, amount, category
	Order     string `form:"order" example:"desc"`             // Sort order. One of asc, desc
}

// parse converts the query parameters into the filter and sort of the
// query engine.
func (f ExpenseQueryFilter) parse() (query.Filter, query.Sort, error) {
	filter := query.Filter{
		Category: f.Category,
		Search:   f.Search,
	}

	var err error
	if f.FromDate != "" {
		if filter.From, err = types.ParseDate(f.FromDate); err != nil {
			return query.Filter{}, query.Sort{}, err
		}
	}

	if f.UntilDate != "" {
		if filter.Until, err = types.ParseDate(f.UntilDate); err != nil {
			return query.Filter{}, query.Sort{}, err
		}
	}

	sort, err := query.Sort{Field: query.Field(f.Sort), Order: query.Order(f.Order)}.Validate()
	if err != nil {
		return query.Filter{}, query.Sort{}, err
	}

	return filter, sort, nil
}
