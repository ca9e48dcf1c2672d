// Package auth implements the mock login of the expense tracker.
//
// No credentials are stored or verified against anything. The
// CredentialChecker decides which logins are accepted.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/repository"
	"github.com/rs/zerolog/log"
)

const minPasswordLength = 6

// Credentials are sent by users to log in.
type Credentials struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// CredentialChecker decides if credentials are accepted.
type CredentialChecker interface {
	Check(ctx context.Context, credentials Credentials) error
}

// CheckerFunc adapts a function to the CredentialChecker interface.
type CheckerFunc func(ctx context.Context, credentials Credentials) error

func (f CheckerFunc) Check(ctx context.Context, credentials Credentials) error {
	return f(ctx, credentials)
}

// FormatChecker accepts every well formed email address with a password
// of at least six characters.
var FormatChecker = CheckerFunc(func(_ context.Context, c Credentials) error {
	if err := checkmail.ValidateFormat(c.Email); err != nil {
		return models.ErrEmailInvalid
	}

	if len([]rune(c.Password)) < minPasswordLength {
		return models.ErrPasswordTooShort
	}

	return nil
})

// Authenticator logs users in and out.
type Authenticator struct {
	sessions repository.Sessions
	checker  CredentialChecker
	now      repository.Clock
}

// New returns an Authenticator. If checker is nil, FormatChecker is used.
func New(sessions repository.Sessions, checker CredentialChecker, now repository.Clock) *Authenticator {
	if checker == nil {
		checker = FormatChecker
	}

	return &Authenticator{
		sessions: sessions,
		checker:  checker,
		now:      now,
	}
}

// Login checks the credentials and stores a new user as the current user.
//
// Every login creates a new user ID. Expenses and budgets of earlier
// logins stay stored under their user ID.
func (a *Authenticator) Login(ctx context.Context, credentials Credentials) (models.User, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	if err := a.checker.Check(ctx, credentials); err != nil {
		return models.User{}, err
	}

	now := a.now()
	user := models.User{
		ID:        fmt.Sprintf("user_%d", now.UnixMilli()),
		Email:     credentials.Email,
		CreatedAt: now.UTC(),
	}

	if err := a.sessions.Save(ctx, user); err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", user.ID).Msg("logged in")
	return user, nil
}

// Current returns the logged in user or models.ErrUnauthorized.
func (a *Authenticator) Current(ctx context.Context) (models.User, error) {
	return a.sessions.Current(ctx)
}

// Logout removes the current user. Logging out without a session is not an error.
func (a *Authenticator) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
