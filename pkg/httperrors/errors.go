package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/envelope-zero/expense-tracker/pkg/httputil"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/planner"
	"github.com/envelope-zero/expense-tracker/pkg/query"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	ErrInvalidID           = errors.New("the specified resource ID is not a valid ID")
	ErrInvalidDate         = errors.New("could not parse the date, did you use YYYY-MM-DD format?")
)

// badRequest are errors caused by the data the client sent.
var badRequest = []error{
	models.ErrValidation,
	query.ErrSortFieldInvalid,
	query.ErrSortOrderInvalid,
	planner.ErrSortInvalid,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidBody,
	ErrCleanupConfirmation,
	ErrInvalidID,
	ErrInvalidDate,
}

type HTTPError struct {
	Error string `json:"error" example:"please enter a valid amount, it must be a positive number"`
}

// Generate a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	if errors.Is(err, models.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	// storage.ErrStorage and everything unknown
	return http.StatusInternalServerError
}

// Handler writes the error response for err.
//
// Messages of server errors are not sent to the client, they are logged
// together with the request ID instead.
func Handler(c *gin.Context, err error) {
	status := Status(err)
	if status != http.StatusInternalServerError {
		New(c, status, err.Error())
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Bool("storage", errors.Is(err, storage.ErrStorage)).Msgf("%T: %v", err, err.Error())
	New(c, status, "An error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
}

func InvalidID(c *gin.Context) {
	New(c, http.StatusBadRequest, ErrInvalidID.Error())
}

func InvalidDate(c *gin.Context) {
	New(c, http.StatusBadRequest, ErrInvalidDate.Error())
}
