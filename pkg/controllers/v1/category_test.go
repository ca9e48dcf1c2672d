package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategories() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 11)
	assert.Equal(suite.T(), "Food & Dining", response.Data[0].Name)
	assert.Equal(suite.T(), "Other", response.Data[10].Name)
}
