package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"protoparts/internal/domain"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/infrastructure/http/v1/dto"
)

// PrototypeService is the prototype API surface.
type PrototypeService interface {
	Lifecycle
	SetPrototypes
	List(ctx context.Context, q prototype.ListQuery) (domain.ListResult[prototype.View], error)
	Get(ctx context.Context, id int64) (prototype.View, error)
	Update(ctx context.Context, actorID, id int64, cmd prototype.UpdateCommand) (prototype.View, error)
}

// PrototypeHandler handles prototype endpoints.
type PrototypeHandler struct {
	*LifecycleHandler
	service PrototypeService
}

// NewPrototypeHandler creates a new prototype handler.
func NewPrototypeHandler(base *BaseHandler, service PrototypeService) *PrototypeHandler {
	return &PrototypeHandler{
		LifecycleHandler: NewLifecycleHandler(base, service),
		service:          service,
	}
}

// List handles GET /prototypes.
func (h *PrototypeHandler) List(c *gin.Context) {
	var q prototype.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(result, dto.FromPrototype))
}

// Get handles GET /prototypes/:id.
func (h *PrototypeHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPrototype(v))
}

// Update handles PUT /prototypes/:id.
func (h *PrototypeHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var cmd prototype.UpdateCommand
	if !h.BindJSON(c, &cmd) {
		return
	}
	v, err := h.service.Update(c.Request.Context(), h.GetUserID(c), id, cmd)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPrototype(v))
}
