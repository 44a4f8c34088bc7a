package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bft-labs/itemd/internal/ports"
)

// buildRouter assembles the gin engine with middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	api := r.Group("/api")
	items := api.Group("/items")
	items.GET("", s.listItems)
	items.POST("", s.createItem)
	items.GET("/process", s.processItems)
	items.GET("/:id", s.getItem)
	items.PUT("/:id", s.updateItem)
	items.DELETE("/:id", s.deleteItem)

	return r
}

// requestLogger logs one line per request after it completes.
func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			ports.String("method", c.Request.Method),
			ports.String("path", c.Request.URL.Path),
			ports.Int("status", c.Writer.Status()),
			ports.Duration("duration", time.Since(start)),
		)
	}
}
