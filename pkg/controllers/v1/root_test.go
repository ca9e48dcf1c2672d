package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Budgets:       "http://example.com/v1/budgets",
		BudgetSummary: "http://example.com/v1/budgets/summary",
		Categories:    "http://example.com/v1/categories",
		Expenses:      "http://example.com/v1/expenses",
		Export:        "http://example.com/v1/export",
		Session:       "http://example.com/v1/session",
		Stats:         "http://example.com/v1/stats",
		Theme:         "http://example.com/v1/theme",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path     string
		expected string
	}{
		{"/v1", "OPTIONS, GET, DELETE"},
		{"/v1/session", "OPTIONS, GET, POST, DELETE"},
		{"/v1/theme", "OPTIONS, GET, PUT"},
		{"/v1/categories", "OPTIONS, GET"},
		{"/v1/expenses", "OPTIONS, GET, POST"},
		{"/v1/expenses/1704067200000", "OPTIONS, DELETE"},
		{"/v1/stats", "OPTIONS, GET"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/summary", "OPTIONS, GET"},
		{"/v1/budgets/1704067200000", "OPTIONS, PATCH, DELETE"},
		{"/v1/export", "OPTIONS, GET"},
	}

	// No login, OPTIONS requests work without a session
	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.expected, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.login(suite.T(), "jane@example.com")
	_ = suite.createTestExpense(suite.T(), expense{})
	_ = suite.createTestBudget(suite.T(), budget{})

	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	keys, err := suite.db.Keys(suite.T().Context())
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), keys, 0, "There are keys left: %v", keys)

	// The session is deleted, too
	recorder = suite.request(http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), "confirmation")
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
