package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/expense-tracker/pkg/controllers/v1"
	"github.com/envelope-zero/expense-tracker/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSession() {
	// Nobody is logged in
	recorder := suite.request(http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	user := suite.login(suite.T(), " jane@example.com ")
	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.Equal(suite.T(), "user_1706184000000", user.ID)
	assert.True(suite.T(), now.Equal(user.CreatedAt))

	recorder = suite.request(http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), user.ID, response.Data.ID)

	// Log out twice, both succeed
	for range 2 {
		recorder = suite.request(http.MethodDelete, "http://example.com/v1/session", "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	}

	recorder = suite.request(http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestSessionLoginFails() {
	tests := []struct {
		name     string
		body     any
		contains string
	}{
		{"Empty body", "", "must not be empty"},
		{"Broken JSON", `{ "email": `, "un-parseable"},
		{"Missing password", map[string]string{"email": "jane@example.com"}, "Password is required"},
		{"Invalid email", map[string]string{"email": "jane.example.com", "password": "hunter22"}, "email address is not valid"},
		{"Short password", map[string]string{"email": "jane@example.com", "password": "12345"}, "at least 6 characters"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/session", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.contains)
		})
	}

	// No session was created
	recorder := suite.request(http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestSessionDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodPost, "http://example.com/v1/session", map[string]string{"email": "jane@example.com", "password": "hunter22"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
