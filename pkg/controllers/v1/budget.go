package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/planner"
	"github.com/envelope-zero/expense-tracker/pkg/stats"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	{
		r.OPTIONS("/summary", OptionsBudgetSummary)
		r.GET("/summary", co.GetBudgetSummary)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/summary [options]
func OptionsBudgetSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	int	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets of the logged in user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Budgets.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data:        budgets,
		TotalBudget: planner.TotalBudget(budgets),
	})
}

// @Summary		Create budget
// @Description	Creates a new budget for the logged in user. The period defaults to monthly
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			budget	body		models.BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable models.BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget, err := co.Budgets.Create(c.Request.Context(), currentUser(c).ID, editable)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: budget})
}

// @Summary		Update budget
// @Description	Replaces category, amount and period of a budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		int						true	"ID of the budget"
// @Param			budget	body		models.BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIBudgetID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidID(c)
		return
	}

	var editable models.BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget, err := co.Budgets.Update(c.Request.Context(), currentUser(c).ID, uri.ID, editable)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Deleting a budget that does not exist succeeds
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		int	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIBudgetID
	if err := c.ShouldBindUri(&uri); err != nil {
		httperrors.InvalidID(c)
		return
	}

	if err := co.Budgets.Delete(c.Request.Context(), currentUser(c).ID, uri.ID); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get budget summary
// @Description	Compares all budgets of the logged in user with the spending of the current month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetSummaryResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			sort	query		string	false	"Sort allocation rows by amount, spent or remaining"
// @Router			/v1/budgets/summary [get]
func (co Controller) GetBudgetSummary(c *gin.Context) {
	var params QueryBudgetSort

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&params)

	ctx := c.Request.Context()
	user := currentUser(c)

	budgets, err := co.Budgets.List(ctx, user.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	expenses, err := co.Expenses.ListForUser(ctx, user.ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	summary, err := planner.Summarize(budgets, stats.CurrentMonthByCategory(expenses, co.Now()), planner.SortField(params.Sort))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetSummaryResponse{Data: summary})
}
