// Package handlers adapts HTTP requests to the domain services.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"protoparts/internal/core/apperror"
	appctx "protoparts/internal/core/context"
)

// BaseHandler carries the helpers every handler embeds. Errors are only
// attached to the context; middleware.ErrorHandler renders them.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON decodes the request body into obj.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	return h.bind(c, obj, binding.JSON, "invalid request body")
}

// BindQuery decodes the query string into obj. Value ranges are checked
// by the services.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	return h.bind(c, obj, binding.Query, "invalid query parameters")
}

func (h *BaseHandler) bind(c *gin.Context, obj any, b binding.Binding, msg string) bool {
	if err := c.ShouldBindWith(obj, b); err != nil {
		h.Error(c, apperror.NewValidation(msg).WithDetail("error", err.Error()))
		return false
	}
	return true
}

func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseID reads a positive :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.Error(c, apperror.NewInvalidInput("invalid id format").WithDetail("id", raw))
		return 0, false
	}
	return id, true
}

// GetUserID is the authenticated caller, used as the acting user of commands.
func (h *BaseHandler) GetUserID(c *gin.Context) int64 {
	return appctx.GetUserID(c.Request.Context())
}

func (h *BaseHandler) OK(c *gin.Context, data any)      { c.JSON(http.StatusOK, data) }
func (h *BaseHandler) Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }
func (h *BaseHandler) NoContent(c *gin.Context)         { c.Status(http.StatusNoContent) }
