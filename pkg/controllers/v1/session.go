package v1

import (
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/auth"
	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/gin-gonic/gin"
)

type SessionResponse struct {
	Data models.User `json:"data"` // The logged in user
}

// RegisterSessionRoutes registers the routes for the session with
// the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSession)
	r.GET("", co.GetSession)
	r.POST("", co.CreateSession)
	r.DELETE("", co.DeleteSession)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func OptionsSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get the session
// @Description	Returns the logged in user
// @Tags			Session
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/session [get]
func (co Controller) GetSession(c *gin.Context) {
	user, err := co.Auth.Current(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: user})
}

// @Summary		Log in
// @Description	Logs in with an email address and a password. Every login creates a new user
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			credentials	body		auth.Credentials	true	"Credentials"
// @Router			/v1/session [post]
func (co Controller) CreateSession(c *gin.Context) {
	var credentials auth.Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		httperrors.Handler(c, err)
		return
	}

	user, err := co.Auth.Login(c.Request.Context(), credentials)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: user})
}

// @Summary		Log out
// @Description	Logs out the current user. Logging out without a session succeeds
// @Tags			Session
// @Success		204
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/session [delete]
func (co Controller) DeleteSession(c *gin.Context) {
	if err := co.Auth.Logout(c.Request.Context()); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
