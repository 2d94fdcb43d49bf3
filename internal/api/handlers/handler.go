package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields      = "Missing fields"
	msgMissingReply       = "Missing reply"
	msgInvalidCredentials = "Invalid credentials"
	msgInternalError      = "internal server error"
)

// internalError 記錄原始錯誤，回應只給通用訊息，不洩漏內部細節
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
