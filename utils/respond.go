package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes a JSON error body and aborts the request.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
