// Package v1 implements the v1 HTTP API of the expense tracker.
package v1

import (
	"github.com/envelope-zero/expense-tracker/pkg/auth"
	"github.com/envelope-zero/expense-tracker/pkg/httperrors"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/repository"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/gin-gonic/gin"
)

// contextUser is the gin context key the logged in user is stored under.
const contextUser = "user"

// Controller holds everything the handlers need.
type Controller struct {
	Store       storage.Store // Used for export and cleanup, all other access goes through the repositories
	Auth        *auth.Authenticator
	Expenses    repository.Expenses
	Budgets     repository.Budgets
	Preferences repository.Preferences
	Now         repository.Clock
}

// New creates a Controller with the default repositories on top of store.
func New(store storage.Store, now repository.Clock) Controller {
	return Controller{
		Store:       store,
		Auth:        auth.New(repository.NewSessionRepository(store), nil, now),
		Expenses:    repository.NewExpenseRepository(store, now),
		Budgets:     repository.NewBudgetRepository(store, now),
		Preferences: repository.NewPreferenceRepository(store),
		Now:         now,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterRootRoutes(r)
	co.RegisterSessionRoutes(r.Group("/session"))
	co.RegisterThemeRoutes(r.Group("/theme"))
	RegisterCategoryRoutes(r.Group("/categories"))

	// Everything below belongs to the logged in user
	user := r.Group("", co.requireUser)
	co.RegisterExpenseRoutes(user.Group("/expenses"))
	co.RegisterStatsRoutes(user.Group("/stats"))
	co.RegisterBudgetRoutes(user.Group("/budgets"))
	co.RegisterExportRoutes(user.Group("/export"))
}

// requireUser aborts the request with 401 if nobody is logged in.
//
// OPTIONS requests are always allowed.
func (co Controller) requireUser(c *gin.Context) {
	if c.Request.Method == "OPTIONS" {
		c.Next()
		return
	}

	user, err := co.Auth.Current(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// currentUser returns the user set by requireUser.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
