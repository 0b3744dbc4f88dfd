// Package handlers implements the HTTP endpoints of the patent search API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/pkg/errors"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError renders err with the HTTP status mapped from its error code.
func respondError(c *gin.Context, err error) {
	resp := errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: "internal error",
	}

	var ae *errors.AppError
	if errors.AsAppError(err, &ae) {
		resp.Message = ae.Message
		resp.Detail = ae.Detail
	}

	c.JSON(errors.HTTPStatus(err), resp)
}
