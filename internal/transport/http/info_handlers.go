package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "chat-gateway"
	serviceVersion = "1.0.0"
)

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}

func testHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "chat gateway is up",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func infoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        serviceName,
		"version":     serviceVersion,
		"description": "room-scoped real-time chat broadcast gateway",
		"endpoints": gin.H{
			"health":    "/health",
			"test":      "/api/test",
			"messages":  "/api/messages",
			"websocket": "/ws",
		},
	})
}
