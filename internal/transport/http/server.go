package http

import (
	stdhttp "net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/noskills/chat-gateway/internal/config"
	"github.com/noskills/chat-gateway/internal/core"
)

// NewServer builds the HTTP server: REST endpoints plus the websocket
// entry point, both backed by the same gateway.
func NewServer(gw *core.Gateway, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.CORSOrigin))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(gw, cfg.MaxMessageBytes, logger)))

	limiter := newRateLimiter(cfg.RateLimit, cfg.RateWindow)
	stop := make(chan struct{})
	limiter.startReset(stop)

	api := router.Group("/api", RateLimitMiddleware(limiter))
	api.GET("/test", testHandler)
	api.GET("/info", infoHandler)

	messages := NewMessageHandlers(gw, logger)
	api.POST("/messages", messages.PostMessage)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(stdhttp.StatusNotFound, gin.H{
				"error":   "endpoint not found",
				"message": "no route for " + c.Request.URL.Path,
			})
			return
		}
		c.Status(stdhttp.StatusNotFound)
	})

	srv := &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	srv.RegisterOnShutdown(func() { close(stop) })
	return srv
}
