// Package gin provides the HTTP API over the record store.
package gin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServerConfig holds HTTP server configuration options.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(handler *Handler, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", handler.HealthCheck)

	api := r.Group("/api/v1")
	{
		api.GET("/records", handler.ListRecords)
		api.GET("/records/:id", handler.GetRecord)
		api.PATCH("/records/:id", handler.UpdateRecord)
		api.DELETE("/records/:id", handler.DeleteRecord)
		api.POST("/records/:id/approve", handler.ApproveRecord)
		api.GET("/runs", handler.ListRuns)
	}

	return r
}
