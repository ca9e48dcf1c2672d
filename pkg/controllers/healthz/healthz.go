package healthz

import (
	"context"
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Pinger checks that the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, storage Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(storage))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object} httperrors.HTTPError
// @Router			/healthz [get]
func Get(storage Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := storage.Ping(c.Request.Context()); err != nil {
			httperrors.Handler(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
