package httperr

import (
	"errors"
	"net/http"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/errs"
	"queueless/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// first match wins
var domainErrors = []mapping{
	{queue.ErrCapacityExceeded, http.StatusConflict, "Time slot is full"},
	{queue.ErrInvalidTransition, http.StatusConflict, "Token is already completed"},
	{queue.ErrTokenNotFound, http.StatusNotFound, "Token not found"},
	{errs.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{timeslot.ErrDepartmentNotFound, http.StatusNotFound, "Department not found"},
	{timeslot.ErrSlotNotFound, http.StatusNotFound, "No time slot covers the requested time"},
	{errs.ErrPastDay, http.StatusBadRequest, "Requested day is in the past"},
	{errs.ErrInvalidOutcome, http.StatusBadRequest, "Invalid outcome"},
	{queries.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{timeslot.ErrInvalidDay, http.StatusBadRequest, "Invalid day"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrSequenceUnavailable, http.StatusServiceUnavailable, "Queue temporarily unavailable"},
}

// Classify maps an error from the use case layer to a status and client message.
func Classify(err error) (int, string) {
	for _, m := range domainErrors {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal error"
}

func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}
