package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of Budget collection endpoint
	BudgetSummary string `json:"budgetSummary" example:"https://example.com/api/v1/budgets/summary"` // URL of the budget planner summary
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of the category catalog
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of Expense collection endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
	Session       string `json:"session" example:"https://example.com/api/v1/session"`              // URL of the session endpoint
	Stats         string `json:"stats" example:"https://example.com/api/v1/stats"`                  // URL of the statistics endpoint
	Theme         string `json:"theme" example:"https://example.com/api/v1/theme"`                  // URL of the theme preference
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:       url + "/v1/budgets",
			BudgetSummary: url + "/v1/budgets/summary",
			Categories:    url + "/v1/categories",
			Expenses:      url + "/v1/expenses",
			Export:        url + "/v1/export",
			Session:       url + "/v1/session",
			Stats:         url + "/v1/stats",
			Theme:         url + "/v1/theme",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all stored data, including the session and preferences
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		httperrors.Handler(c, httperrors.ErrCleanupConfirmation)
		return
	}

	ctx := c.Request.Context()

	keys, err := co.Store.Keys(ctx)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	for _, key := range keys {
		if err := co.Store.Remove(ctx, key); err != nil {
			httperrors.Handler(c, err)
			return
		}
	}

	log.Info().Int("keys", len(keys)).Msg("deleted all data")
	c.Status(http.StatusNoContent)
}
