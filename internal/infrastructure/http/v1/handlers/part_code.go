package handlers

import (
	"github.com/gin-gonic/gin"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/validation"
	"protoparts/internal/domain/partcode"
	"protoparts/internal/infrastructure/http/v1/dto"
)

// PartCodeHandler exposes the part-code editor operations.
type PartCodeHandler struct {
	*BaseHandler
}

// NewPartCodeHandler creates a part-code handler.
func NewPartCodeHandler(base *BaseHandler) *PartCodeHandler {
	return &PartCodeHandler{BaseHandler: base}
}

// Parse handles GET /part-codes/parse?code=.
func (h *PartCodeHandler) Parse(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.Error(c, apperror.NewValidation("code is required").WithDetail("field", "code"))
		return
	}
	h.OK(c, dto.NewPartCodeResponse(partcode.Parse(code)))
}

// Input handles POST /part-codes/input.
func (h *PartCodeHandler) Input(c *gin.Context) {
	var req dto.PartCodeInputRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPartCodeState(req.State().Input(req.Index, req.Raw)))
}

// Navigate handles POST /part-codes/navigate.
func (h *PartCodeHandler) Navigate(c *gin.Context) {
	var req dto.PartCodeNavigateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, req.State().Navigate(req.Index, req.Event))
}
