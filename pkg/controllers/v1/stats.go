package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/stats"
	"github.com/gin-gonic/gin"
)

type StatsResponse struct {
	Data stats.Overview `json:"data"`
}

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", co.GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns aggregated statistics over all expenses of the logged in user
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/stats [get]
func (co Controller) GetStats(c *gin.Context) {
	expenses, err := co.Expenses.ListForUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: stats.Summarize(expenses, co.Now())})
}
