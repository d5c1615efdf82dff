package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/copy/model"
	"shelftrack-backend/internal/domains/copy/service"
	"shelftrack-backend/internal/shared/middleware"
	"shelftrack-backend/internal/shared/response"
	"shelftrack-backend/internal/shared/utils"
)

// Handler is the HTTP layer for per-copy inventory records.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

type toggleListedRequest struct {
	IsListed bool `json:"isListed"`
}

// UpsertCopy - PUT /v1/books/:id/copies
// Creates a copy (no id in body) or replaces one wholesale (id in body).
func (h *Handler) UpsertCopy(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	bookID := c.Param("id")
	if !utils.IsValidUUID(bookID) {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.UpsertCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}
	if req.ID != "" && !utils.IsValidUUID(req.ID) {
		response.BadRequest(c, "invalid copy id")
		return
	}

	copyResp, err := h.service.UpsertCopy(c.Request.Context(), ownerID, uuid.MustParse(bookID), req)
	if model.HandleCopyError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Copy saved successfully", copyResp)
}

// ToggleListed - PATCH /v1/copies/:copyId/listed
func (h *Handler) ToggleListed(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	copyID := c.Param("copyId")
	if !utils.IsValidUUID(copyID) {
		response.BadRequest(c, "invalid copy id")
		return
	}

	var req toggleListedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	copyResp, err := h.service.ToggleListed(c.Request.Context(), ownerID, uuid.MustParse(copyID), req.IsListed)
	if model.HandleCopyError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Copy listing updated", copyResp)
}

// DeleteCopy - DELETE /v1/copies/:copyId
// Sibling sort indices keep their gaps.
func (h *Handler) DeleteCopy(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	copyID := c.Param("copyId")
	if !utils.IsValidUUID(copyID) {
		response.BadRequest(c, "invalid copy id")
		return
	}

	err := h.service.DeleteCopy(c.Request.Context(), ownerID, uuid.MustParse(copyID))
	if model.HandleCopyError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Copy deleted successfully", nil)
}

// ReorderCopies - POST /v1/books/:id/copies/reorder
func (h *Handler) ReorderCopies(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	bookID := c.Param("id")
	if !utils.IsValidUUID(bookID) {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.ReorderCopiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}
	if !utils.IsValidUUID(req.DraggedID) || !utils.IsValidUUID(req.TargetID) {
		response.BadRequest(c, "dragged and target ids must be valid UUIDs")
		return
	}

	order, err := h.service.ReorderCopies(c.Request.Context(), ownerID, uuid.MustParse(bookID),
		uuid.MustParse(req.DraggedID), uuid.MustParse(req.TargetID))
	if model.HandleCopyError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Copies reordered successfully", gin.H{"order": order})
}

// GetValuation - GET /v1/copies/:copyId/valuation
// Profit, margin and ROI derived from purchase and market price.
func (h *Handler) GetValuation(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	copyID := c.Param("copyId")
	if !utils.IsValidUUID(copyID) {
		response.BadRequest(c, "invalid copy id")
		return
	}

	copyResp, err := h.service.GetValuation(c.Request.Context(), ownerID, uuid.MustParse(copyID))
	if model.HandleCopyError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Valuation computed successfully", copyResp)
}
