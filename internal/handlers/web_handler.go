package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) CustomersPage(c *gin.Context) {
	c.HTML(http.StatusOK, "customers.html", gin.H{
		"Title": "Customers",
	})
}
