// Common helper functions for HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError maps an application error to an HTTP status code and writes
// the standard error body.
func respondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(errors.CodeUnknown),
			Message: err.Error(),
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case errors.ErrCodeTextNotUTF8, errors.ErrCodeNoteMalformed,
		errors.ErrCodeSpanInvalid, errors.ErrCodeConceptListInvalid,
		errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeRecognizerFailed, errors.ErrCodeUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}
