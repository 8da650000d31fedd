package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/walktrack-backend-go/internal/config"
	"github.com/jengzang/walktrack-backend-go/internal/handler"
	"github.com/jengzang/walktrack-backend-go/internal/middleware"
	"github.com/jengzang/walktrack-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config, tracker *service.TrackerService, statsService *service.StatsService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the mobile web client.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Walk Tracking API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessionHandler := handler.NewSessionHandler(tracker)
	statsHandler := handler.NewStatsHandler(statsService)
	chartHandler := handler.NewChartHandler(statsService)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.TokenTTL)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", authHandler.Token)

		authed := api.Group("")
		authed.Use(middleware.Auth(cfg.JWTSecret))
		{
			sessions := authed.Group("/sessions")
			{
				sessions.POST("/start", sessionHandler.Start)
				sessions.POST("/stop", sessionHandler.Stop)
				// The sensor feed can burst; cap it per client.
				sessions.POST("/samples", middleware.RateLimit(600, time.Minute), sessionHandler.Samples)
				sessions.GET("/current", sessionHandler.Current)
				sessions.GET("", statsHandler.GetSessions)
			}

			steps := authed.Group("/steps")
			{
				steps.GET("/hourly", statsHandler.GetHourly)
				steps.GET("/summary", statsHandler.GetSummary)
				steps.GET("/chart", chartHandler.HourlyChart)
			}
		}
	}

	return r
}
