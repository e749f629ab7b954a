package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"protoparts/internal/domain"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/domain/prototypeset"
	"protoparts/internal/infrastructure/http/v1/dto"
)

// PrototypeSetService is the prototype set API surface.
type PrototypeSetService interface {
	Lifecycle
	List(ctx context.Context, q prototypeset.ListQuery) (domain.ListResult[prototypeset.View], error)
	Get(ctx context.Context, id int64) (prototypeset.View, error)
	Create(ctx context.Context, actorID int64, cmd prototypeset.CreateCommand) (prototypeset.View, error)
}

// SetPrototypes lists the prototypes of one set.
type SetPrototypes interface {
	ListBySet(ctx context.Context, setID int64, q prototype.ListQuery) (domain.ListResult[prototype.View], error)
}

// PrototypeSetHandler handles prototype set endpoints.
type PrototypeSetHandler struct {
	*LifecycleHandler
	service    PrototypeSetService
	prototypes SetPrototypes
}

// NewPrototypeSetHandler creates a new prototype set handler.
func NewPrototypeSetHandler(base *BaseHandler, service PrototypeSetService, prototypes SetPrototypes) *PrototypeSetHandler {
	return &PrototypeSetHandler{
		LifecycleHandler: NewLifecycleHandler(base, service),
		service:          service,
		prototypes:       prototypes,
	}
}

// List handles GET /prototype-sets.
func (h *PrototypeSetHandler) List(c *gin.Context) {
	var q prototypeset.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(result, dto.FromPrototypeSet))
}

// Get handles GET /prototype-sets/:id.
func (h *PrototypeSetHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPrototypeSet(v))
}

// Create handles POST /prototype-sets.
func (h *PrototypeSetHandler) Create(c *gin.Context) {
	var cmd prototypeset.CreateCommand
	if !h.BindJSON(c, &cmd) {
		return
	}
	v, err := h.service.Create(c.Request.Context(), h.GetUserID(c), cmd)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromPrototypeSet(v))
}

// ListPrototypes handles GET /prototype-sets/:id/prototypes.
func (h *PrototypeSetHandler) ListPrototypes(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var q prototype.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.service.Get(ctx, id); err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.prototypes.ListBySet(ctx, id, q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(result, dto.FromPrototype))
}
