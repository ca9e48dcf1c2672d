package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/shopspring/decimal"
)

// login logs in a user with a valid email address.
func (suite *TestSuiteStandard) login(t *testing.T, email string) models.User {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/session", map[string]string{
		"email":    email,
		"password": "hunter22",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(t, &recorder, &response)
	return response.Data
}

// expense is the request body for expense creation.
type expense struct {
	Amount      any    `json:"amount,omitempty"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

func (suite *TestSuiteStandard) createTestExpense(t *testing.T, e expense, expectedStatus ...int) v1.ExpenseResponse {
	if e.Amount == nil {
		e.Amount = 10
	}

	if e.Category == "" {
		e.Category = "Other"
	}

	if e.Date == "" {
		e.Date = "2024-01-20"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := suite.request(http.MethodPost, "http://example.com/v1/expenses", e)
	test.AssertHTTPStatus(t, &recorder, expectedStatus[0])

	var response v1.ExpenseResponse
	if recorder.Code == http.StatusCreated {
		test.DecodeResponse(t, &recorder, &response)
	}
	return response
}

// budget is the request body for budget creation and updates.
type budget struct {
	Category string           `json:"category,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Period   string           `json:"period,omitempty"`
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *TestSuiteStandard) createTestBudget(t *testing.T, b budget, expectedStatus ...int) v1.BudgetResponse {
	if b.Category == "" {
		b.Category = "Food & Dining"
	}

	if b.Amount == nil {
		b.Amount = amount("400")
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := suite.request(http.MethodPost, "http://example.com/v1/budgets", b)
	test.AssertHTTPStatus(t, &recorder, expectedStatus[0])

	var response v1.BudgetResponse
	if recorder.Code == http.StatusCreated {
		test.DecodeResponse(t, &recorder, &response)
	}
	return response
}
