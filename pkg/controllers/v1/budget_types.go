package v1

import (
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/planner"
	"github.com/shopspring/decimal"
)

type BudgetResponse struct {
	Data models.Budget `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data        []models.Budget `json:"data"`                        // List of budgets
	TotalBudget decimal.Decimal `json:"totalBudget" example:"1200"` // Sum of all budget amounts, regardless of period
}

type BudgetSummaryResponse struct {
	Data planner.Summary `json:"data"`
}

type URIBudgetID struct {
	ID int64 `uri:"id" binding:"required"` // The ID of the budget
}

type QueryBudgetSort struct {
	Sort string `form:"sort" example:"spent"` // Sort allocation rows by amount, spent or remaining
}
