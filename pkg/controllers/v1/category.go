package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/gin-gonic/gin"
)

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // The category catalog in display order
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the category catalog. Expenses and budgets also accept categories that are not in the catalog
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: models.Categories})
}
