package v1_test

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExport() {
	user := suite.login(suite.T(), "jane@example.com")
	e := suite.createTestExpense(suite.T(), expense{Description: "Exported"}).Data
	_ = suite.createTestBudget(suite.T(), budget{})

	recorder := suite.request(http.MethodPut, "http://example.com/v1/theme", v1.ThemeEditable{Theme: models.ThemeDark})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	keys := make([]string, 0, len(response.Data))
	for key := range response.Data {
		keys = append(keys, key)
	}
	assert.ElementsMatch(suite.T(), []string{"expenses", "budgets_" + user.ID, "expenseTrackerUser", "appTheme"}, keys)

	var theme string
	assert.Nil(suite.T(), json.Unmarshal(response.Data["appTheme"], &theme))
	assert.Equal(suite.T(), "dark", theme)

	var expenses []models.Expense
	assert.Nil(suite.T(), json.Unmarshal(response.Data["expenses"], &expenses))
	assert.Equal(suite.T(), []models.Expense{e}, expenses)
}

func (suite *TestSuiteStandard) TestExportOnlyContainsCurrentUser() {
	jane := suite.login(suite.T(), "jane@example.com")
	_ = suite.createTestExpense(suite.T(), expense{Description: "Jane's"})
	_ = suite.createTestBudget(suite.T(), budget{})

	suite.clock = suite.clock.Add(time.Minute)
	john := suite.login(suite.T(), "john@example.com")
	johns := suite.createTestExpense(suite.T(), expense{Description: "John's"}).Data
	_ = suite.createTestBudget(suite.T(), budget{Category: "Travel"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Contains(suite.T(), response.Data, "budgets_"+john.ID)
	assert.NotContains(suite.T(), response.Data, "budgets_"+jane.ID)

	var expenses []models.Expense
	assert.Nil(suite.T(), json.Unmarshal(response.Data["expenses"], &expenses))
	assert.Equal(suite.T(), []models.Expense{johns}, expenses)
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.login(suite.T(), "jane@example.com")
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "http://example.com/v1/export", "")

	// The session can not be read either
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
