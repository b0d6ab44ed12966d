package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/errs"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONDomainError maps an engine error to its HTTP status and writes
// the error envelope.
func JSONDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidOperation):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrStorage):
		JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
