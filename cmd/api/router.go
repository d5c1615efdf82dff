package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shelftrack-backend/internal/shared/middleware"
	"shelftrack-backend/internal/shared/response"
	"shelftrack-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler(c))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.UserHandler.Register)
			auth.POST("/login", c.UserHandler.Login)
			auth.POST("/refresh", c.UserHandler.Refresh)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			protected.GET("/users/me", c.UserHandler.Me)

			books := protected.Group("/books")
			{
				books.GET("", c.BookHandler.ListBooks)
				books.POST("", c.BookHandler.CreateBook)
				books.POST("/reorder", c.BookHandler.ReorderBooks)
				books.GET("/:id", c.BookHandler.GetBook)
				books.PATCH("/:id", c.BookHandler.UpdateBook)
				books.DELETE("/:id", c.BookHandler.DeleteBook)

				books.PUT("/:id/copies", c.CopyHandler.UpsertCopy)
				books.POST("/:id/copies/reorder", c.CopyHandler.ReorderCopies)
			}

			copies := protected.Group("/copies")
			{
				copies.PATCH("/:copyId/listed", c.CopyHandler.ToggleListed)
				copies.GET("/:copyId/valuation", c.CopyHandler.GetValuation)
				copies.DELETE("/:copyId", c.CopyHandler.DeleteCopy)
			}

			protected.POST("/lookup", c.LookupHandler.Lookup)
			protected.POST("/pricing/estimate", c.PricingHandler.Estimate)
		}
	}

	return router
}

// healthHandler reports the status of the server and its dependencies.
func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}

		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}

		status := http.StatusOK
		message := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			message = "unhealthy"
		}

		response.Success(ctx, status, message, gin.H{
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
