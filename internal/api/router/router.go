package router

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/notiboard/notiboard/internal/api/handlers/board"
	"github.com/notiboard/notiboard/internal/middlewares"
)

func New(handler *board.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/notify", handler.Create)
		api.GET("/notify/:id", handler.GetOne)
		api.DELETE("/notify/:id", handler.Cancel)
		api.GET("/notifications", handler.List)
		api.GET("/stats", handler.Stats)
	}

	e.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return e
}
