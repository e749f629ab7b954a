package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"protoparts/internal/domain"
	"protoparts/internal/domain/prototypespackage"
	"protoparts/internal/infrastructure/http/v1/dto"
)

// PrototypesPackageService is the prototypes package API surface.
type PrototypesPackageService interface {
	Lifecycle
	List(ctx context.Context, q prototypespackage.ListQuery) (domain.ListResult[prototypespackage.View], error)
	Get(ctx context.Context, id int64) (prototypespackage.View, error)
	Create(ctx context.Context, actorID int64, cmd prototypespackage.CreateCommand) (prototypespackage.View, error)
}

// PrototypesPackageHandler handles prototypes package endpoints.
type PrototypesPackageHandler struct {
	*LifecycleHandler
	service PrototypesPackageService
}

// NewPrototypesPackageHandler creates a new prototypes package handler.
func NewPrototypesPackageHandler(base *BaseHandler, service PrototypesPackageService) *PrototypesPackageHandler {
	return &PrototypesPackageHandler{
		LifecycleHandler: NewLifecycleHandler(base, service),
		service:          service,
	}
}

// List handles GET /prototypes-packages.
func (h *PrototypesPackageHandler) List(c *gin.Context) {
	var q prototypespackage.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(result, dto.FromPrototypesPackage))
}

// Get handles GET /prototypes-packages/:id.
func (h *PrototypesPackageHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPrototypesPackage(v))
}

// Create handles POST /prototypes-packages.
func (h *PrototypesPackageHandler) Create(c *gin.Context) {
	var cmd prototypespackage.CreateCommand
	if !h.BindJSON(c, &cmd) {
		return
	}
	v, err := h.service.Create(c.Request.Context(), h.GetUserID(c), cmd)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromPrototypesPackage(v))
}
