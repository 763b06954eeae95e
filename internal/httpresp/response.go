package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(200, body)
}
