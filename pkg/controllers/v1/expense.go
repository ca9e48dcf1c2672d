package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/query"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get expenses
// @Description	Returns the filtered and sorted expenses of the logged in user together with their total
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			category	query		string	false	"Filter by category. 'All' matches every category"
// @Param			search		query		string	false	"Search description, category and amount"
// @Param			fromDate	query		string	false	"First day of the date range, YYYY-MM-DD"
// @Param			untilDate	query		string	false	"Last day of the date range, YYYY-MM-DD"
// @Param			sort		query		string	false	"Sort by date, amount or category"
// @Param			order		query		string	false	"asc or desc"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var params ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&params)

	filter, sort, err := params.parse()
	if errors.Is(err, query.ErrSortFieldInvalid) || errors.Is(err, query.ErrSortOrderInvalid) {
		httperrors.Handler(c, err)
		return
	} else if err != nil {
		httperrors.InvalidDate(c)
		return
	}

	expenses, err := co.Expenses.ListForUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	list, total := query.Apply(expenses, filter, sort)
	c.JSON(http.StatusOK, ExpenseListResponse{Data: list, Total: total})
}

// @Summary		Create expense
// @Description	Records a new expense for the logged in user
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable models.ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	expense, err := co.Expenses.Create(c.Request.Context(), currentUser(c).ID, editable)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense of the logged in user. Deleting an expense that does not exist succeeds
// @Tags			Expenses
// @Success		204
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	// Expenses of all users share one collection. Only expenses of the
	// logged in user may be deleted.
	expenses, err := co.Expenses.ListForUser(ctx, currentUser(c).ID)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	owned := slices.ContainsFunc(expenses, func(e models.Expense) bool {
		return e.ID == id
	})

	if owned {
		if err := co.Expenses.Delete(ctx, id); err != nil {
			httperrors.Handler(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}
