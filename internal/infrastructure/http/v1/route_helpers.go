// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"protoparts/internal/infrastructure/http/v1/middleware"
)

// EntityRouteHandler defines the read and lifecycle routes every scrappable entity exposes.
type EntityRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Scrap(c *gin.Context)
	Reactivate(c *gin.Context)
}

// Creator is an optional interface for entities created through the API.
type Creator interface {
	Create(c *gin.Context)
}

// Updater is an optional interface for entities edited through the API.
type Updater interface {
	Update(c *gin.Context)
}

// RegisterEntityRoutes registers list, get and lifecycle routes for an entity.
// Create and update routes are registered when the handler supports them.
//
// Usage:
//
//	handler := handlers.NewPrototypeHandler(base, prototypeService)
//	RegisterEntityRoutes(api.Group("/prototypes"), handler, "prototype")
func RegisterEntityRoutes(group *gin.RouterGroup, handler EntityRouteHandler, permission string) {
	read := middleware.RequirePermission(permission + ":read")
	write := middleware.RequirePermission(permission + ":write")

	group.GET("", read, handler.List)
	group.GET("/:id", read, handler.Get)
	group.POST("/:id/scrap", write, handler.Scrap)
	group.POST("/:id/reactivate", write, handler.Reactivate)

	if h, ok := handler.(Creator); ok {
		group.POST("", write, h.Create)
	}
	if h, ok := handler.(Updater); ok {
		group.PUT("/:id", write, h.Update)
	}
}
