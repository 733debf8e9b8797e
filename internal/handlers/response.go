package handlers

import "github.com/gin-gonic/gin"

// JSONSuccess writes a JSON success envelope.
func JSONSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// JSONError writes a JSON error envelope.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status": "error",
		"error":  message,
	})
}
