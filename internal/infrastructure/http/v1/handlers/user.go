package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	appctx "protoparts/internal/core/context"
	"protoparts/internal/domain"
	"protoparts/internal/domain/user"
	"protoparts/internal/infrastructure/http/v1/dto"
)

// UserService is the user API surface.
type UserService interface {
	List(ctx context.Context, q user.ListQuery) (domain.ListResult[user.User], error)
	Get(ctx context.Context, id int64) (user.User, error)
}

// UserHandler handles user endpoints.
type UserHandler struct {
	*BaseHandler
	service UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *BaseHandler, service UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	var q user.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(result, dto.FromUser))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.service.Get(ctx, h.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	resp := dto.CurrentUserResponse{UserResponse: dto.FromUser(u), Permissions: []string{}}
	if uc := appctx.GetUser(ctx); uc != nil {
		if uc.Permissions != nil {
			resp.Permissions = uc.Permissions
		}
		resp.IsAdmin = uc.IsAdmin
	}
	h.OK(c, resp)
}
