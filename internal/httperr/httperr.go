package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success  bool   `json:"success"`
	ErrorMsg string `json:"error_msg"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Success:  false,
		ErrorMsg: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
