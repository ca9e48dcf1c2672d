package v1

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/repository"
	"github.com/gin-gonic/gin"
)

type ExportResponse struct {
	Data map[string]json.RawMessage `json:"data"` // All stored values by key
}

// RegisterExportRoutes registers the routes for the export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Returns the stored values of the logged in user keyed by their storage key. The layout is the one of the web application's local storage.
// @Description	Expenses of other users and their budgets are left out.
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	keys, err := co.Store.Keys(ctx)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	data := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, repository.KeyBudgetPrefix) && key != repository.BudgetKey(user.ID) {
			continue
		}

		var value []byte
		if key == repository.KeyExpenses {
			// All users share the expenses key
			expenses, err := co.Expenses.ListForUser(ctx, user.ID)
			if err != nil {
				httperrors.Handler(c, err)
				return
			}

			value, err = json.Marshal(expenses)
			if err != nil {
				httperrors.Handler(c, err)
				return
			}
		} else {
			value, err = co.Store.Get(ctx, key)
			if err != nil {
				httperrors.Handler(c, err)
				return
			}
		}

		// The theme is stored as a plain string
		if !json.Valid(value) {
			value, _ = json.Marshal(string(value))
		}

		data[key] = value
	}

	c.JSON(http.StatusOK, ExportResponse{Data: data})
}
