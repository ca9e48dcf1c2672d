package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/gin-gonic/gin"
)

type ThemeEditable struct {
	Theme models.Theme `json:"theme" binding:"required" example:"dark"` // The display theme, light or dark
}

type ThemeResponse struct {
	Data ThemeEditable `json:"data"`
}

// RegisterThemeRoutes registers the routes for the theme preference with
// the RouterGroup that is passed.
func (co Controller) RegisterThemeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTheme)
	r.GET("", co.GetTheme)
	r.PUT("", co.SetTheme)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Theme
// @Success		204
// @Router			/v1/theme [options]
func OptionsTheme(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get theme
// @Description	Returns the display theme. Defaults to light
// @Tags			Theme
// @Produce		json
// @Success		200	{object}	ThemeResponse
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/theme [get]
func (co Controller) GetTheme(c *gin.Context) {
	theme, err := co.Preferences.Theme(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: ThemeEditable{Theme: theme}})
}

// @Summary		Set theme
// @Description	Sets the display theme
// @Tags			Theme
// @Accept			json
// @Produce		json
// @Success		200		{object}	ThemeResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			theme	body		ThemeEditable	true	"Theme"
// @Router			/v1/theme [put]
func (co Controller) SetTheme(c *gin.Context) {
	var editable ThemeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.Preferences.SetTheme(c.Request.Context(), editable.Theme); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Data: editable})
}
