package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vendorflow/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

type resultResponse struct {
	Result any `json:"result"`
}

type pendingResponse struct {
	JobID   string `json:"jobId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type dataRequest[T any] struct {
	Data T `json:"data"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		logrus.Error(message)
	} else {
		logrus.Warn(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	newErrorResponse(c, statusFor(err), err.Error())
}

// bindBody decodes a JSON body into dst. An empty body leaves dst zero.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", service.ErrDecode, err)
	}
	return nil
}
