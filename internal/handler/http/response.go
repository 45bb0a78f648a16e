package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes a failure envelope: {"success": false, "error": msg}.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// SuccessResponse writes a success envelope, adding "success": true to
// the payload.
func SuccessResponse(c *gin.Context, payload gin.H) {
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}
