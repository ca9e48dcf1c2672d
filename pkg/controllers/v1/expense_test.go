package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// listExpenses returns the IDs of the listed expenses and the total.
func (suite *TestSuiteStandard) listExpenses(t *testing.T, query string) ([]string, decimal.Decimal) {
	recorder := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/expenses"+query, "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)

	ids := make([]string, 0, len(response.Data))
	for _, e := range response.Data {
		ids = append(ids, e.ID)
	}
	return ids, response.Total
}

func (suite *TestSuiteStandard) TestExpensesUnauthorized() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/expenses"},
		{http.MethodPost, "/v1/expenses"},
		{http.MethodDelete, "/v1/expenses/1706184000000"},
		{http.MethodGet, "/v1/stats"},
		{http.MethodGet, "/v1/budgets"},
		{http.MethodGet, "/v1/budgets/summary"},
		{http.MethodGet, "/v1/export"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.router, tt.method, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	user := suite.login(suite.T(), "jane@example.com")

	e := suite.createTestExpense(suite.T(), expense{
		Amount:      12.5,
		Category:    " Food & Dining ",
		Date:        "2024-01-20",
		Description: "Pizza night",
	}).Data

	assert.Equal(suite.T(), "1706184000000", e.ID)
	assert.Equal(suite.T(), user.ID, e.UserID)
	assert.Equal(suite.T(), "Food & Dining", e.Category)
	assert.Equal(suite.T(), "2024-01-20", e.Date.String())
	assert.True(suite.T(), e.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.True(suite.T(), now.Equal(e.CreatedAt))

	// The clock does not move, the ID is bumped
	second := suite.createTestExpense(suite.T(), expense{}).Data
	assert.Equal(suite.T(), "1706184000001", second.ID)

	// Newest first
	ids, total := suite.listExpenses(suite.T(), "")
	assert.Equal(suite.T(), []string{"1706184000001", "1706184000000"}, ids)
	assert.True(suite.T(), total.Equal(decimal.NewFromFloat(22.5)), total.String())
}

func (suite *TestSuiteStandard) TestExpenseCreateFails() {
	suite.login(suite.T(), "jane@example.com")

	tests := []struct {
		name     string
		body     any
		contains string
	}{
		{"Zero amount", expense{Amount: 0, Category: "Other", Date: "2024-01-20"}, "valid amount"},
		{"Negative amount", expense{Amount: -5, Category: "Other", Date: "2024-01-20"}, "valid amount"},
		{"Amount not a number", expense{Amount: "abc", Category: "Other", Date: "2024-01-20"}, "un-parseable"},
		{"No category", expense{Amount: 5, Date: "2024-01-20"}, "category must be set"},
		{"Blank category", expense{Amount: 5, Category: "   ", Date: "2024-01-20"}, "category must be set"},
		{"No date", expense{Amount: 5, Category: "Other"}, "date must be set"},
		{"Broken date", expense{Amount: 5, Category: "Other", Date: "20.01.2024"}, "un-parseable"},
		{"Empty body", "", "must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.contains)
		})
	}

	ids, _ := suite.listExpenses(suite.T(), "")
	assert.Len(suite.T(), ids, 0, "Failed creations must not store anything")
}

func (suite *TestSuiteStandard) TestExpensesFilterAndSort() {
	suite.login(suite.T(), "jane@example.com")

	// IDs are ...000 to ...004 in creation order
	_ = suite.createTestExpense(suite.T(), expense{Amount: 50, Category: "Food & Dining", Date: "2024-01-05", Description: "Groceries"})
	_ = suite.createTestExpense(suite.T(), expense{Amount: 20, Category: "Transportation", Date: "2024-01-10", Description: "Bus pass"})
	_ = suite.createTestExpense(suite.T(), expense{Amount: 15.75, Category: "Food & Dining", Date: "2024-01-15", Description: "Lunch"})
	_ = suite.createTestExpense(suite.T(), expense{Amount: 120, Category: "Utilities", Date: "2023-12-28", Description: "Electricity"})
	_ = suite.createTestExpense(suite.T(), expense{Amount: 8, Category: "Entertainment", Date: "2024-01-20", Description: "Cinema with FOOD"})

	tests := []struct {
		name  string
		query string
		ids   []string
		total string
	}{
		{"Default is date descending", "", []string{"1706184000004", "1706184000002", "1706184000001", "1706184000000", "1706184000003"}, "213.75"},
		{"Category", "?category=Food+%26+Dining", []string{"1706184000002", "1706184000000"}, "65.75"},
		{"Category All", "?category=All&sort=amount&order=asc", []string{"1706184000004", "1706184000002", "1706184000001", "1706184000000", "1706184000003"}, "213.75"},
		{"Search is case insensitive", "?search=food", []string{"1706184000004", "1706184000002", "1706184000000"}, "73.75"},
		{"Search matches amounts", "?search=15.75", []string{"1706184000002"}, "15.75"},
		{"Search is trimmed", "?search=+lunch+", []string{"1706184000002"}, "15.75"},
		{"Date range is inclusive", "?fromDate=2024-01-05&untilDate=2024-01-15&sort=date&order=asc", []string{"1706184000000", "1706184000001", "1706184000002"}, "85.75"},
		{"Single bound is ignored", "?fromDate=2024-01-15", []string{"1706184000004", "1706184000002", "1706184000001", "1706184000000", "1706184000003"}, "213.75"},
		{"Amount descending", "?sort=amount", []string{"1706184000003", "1706184000000", "1706184000001", "1706184000002", "1706184000004"}, "213.75"},
		{"Combined", "?category=Food+%26+Dining&search=lunch&fromDate=2024-01-01&untilDate=2024-01-31", []string{"1706184000002"}, "15.75"},
		{"No match", "?search=rent", []string{}, "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			ids, total := suite.listExpenses(t, tt.query)
			assert.Equal(t, tt.ids, ids)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.total)), "Total is %s, expected %s", total, tt.total)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesQueryInvalid() {
	suite.login(suite.T(), "jane@example.com")

	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"Sort field", "?sort=description", "sort field"},
		{"Sort order", "?order=up", "sort order"},
		{"From date", "?fromDate=yesterday", "YYYY-MM-DD"},
		{"Until date", "?untilDate=2024-13-01", "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/expenses"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesPartitionedByUser() {
	suite.login(suite.T(), "jane@example.com")
	janes := suite.createTestExpense(suite.T(), expense{Description: "Jane's"}).Data

	// Every login creates a new user ID from the clock
	suite.clock = suite.clock.Add(time.Minute)
	suite.login(suite.T(), "john@example.com")
	johns := suite.createTestExpense(suite.T(), expense{Description: "John's"}).Data

	ids, _ := suite.listExpenses(suite.T(), "")
	assert.Equal(suite.T(), []string{johns.ID}, ids)

	// Deleting an expense of another user does nothing
	recorder := suite.request(http.MethodDelete, "http://example.com/v1/expenses/"+janes.ID, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	stored, err := storage.ReadArray[models.Expense](suite.T().Context(), suite.db, "expenses")
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), stored, 2)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	suite.login(suite.T(), "jane@example.com")
	first := suite.createTestExpense(suite.T(), expense{}).Data
	second := suite.createTestExpense(suite.T(), expense{}).Data

	recorder := suite.request(http.MethodDelete, "http://example.com/v1/expenses/"+first.ID, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	ids, _ := suite.listExpenses(suite.T(), "")
	assert.Equal(suite.T(), []string{second.ID}, ids)

	// Deleting again is not an error
	recorder = suite.request(http.MethodDelete, "http://example.com/v1/expenses/"+first.ID, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestExpensesDBError() {
	suite.login(suite.T(), "jane@example.com")

	// Broken data in the store is a server error, not an empty list
	suite.Require().Nil(suite.db.Set(suite.T().Context(), "expenses", []byte("{ not an array")))

	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/expenses", expense{Amount: 5, Category: "Other", Date: "2024-01-20"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	// The broken data is kept
	value, err := suite.db.Get(suite.T().Context(), "expenses")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "{ not an array", string(value))
}
