package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Lifecycle is the scrap/reactivate pair every scrappable service provides.
type Lifecycle interface {
	Scrap(ctx context.Context, actorID, id int64) error
	Reactivate(ctx context.Context, actorID, id int64) error
}

// LifecycleHandler serves the scrap and reactivate routes of one entity.
type LifecycleHandler struct {
	*BaseHandler
	service Lifecycle
}

// NewLifecycleHandler creates a lifecycle handler.
func NewLifecycleHandler(base *BaseHandler, service Lifecycle) *LifecycleHandler {
	return &LifecycleHandler{BaseHandler: base, service: service}
}

// Scrap handles POST /{entity}/:id/scrap.
func (h *LifecycleHandler) Scrap(c *gin.Context) {
	h.transition(c, h.service.Scrap)
}

// Reactivate handles POST /{entity}/:id/reactivate.
func (h *LifecycleHandler) Reactivate(c *gin.Context) {
	h.transition(c, h.service.Reactivate)
}

func (h *LifecycleHandler) transition(c *gin.Context, fn func(ctx context.Context, actorID, id int64) error) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), h.GetUserID(c), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
