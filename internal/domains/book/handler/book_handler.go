package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/book/model"
	"shelftrack-backend/internal/domains/book/service"
	"shelftrack-backend/internal/shared/middleware"
	"shelftrack-backend/internal/shared/response"
	"shelftrack-backend/internal/shared/utils"
)

// Handler is the HTTP layer for the book collection.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /v1/books
// Query params: listedOnly, q, sort
func (h *Handler) ListBooks(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid list parameters", err)
		return
	}

	books, err := h.service.ListBooks(c.Request.Context(), ownerID, req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books retrieved successfully", books)
}

// GetBook - GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), ownerID, uuid.MustParse(id))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book retrieved successfully", book)
}

// CreateBook - POST /v1/books
// Body comes from manual entry or a confirmed lookup result; the new book
// lands at the end of the manual order with an empty copies list.
func (h *Handler) CreateBook(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), ownerID, req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book)
}

// UpdateBook - PATCH /v1/books/:id
// Only the provided fields are applied.
func (h *Handler) UpdateBook(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), ownerID, uuid.MustParse(id), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book)
}

// DeleteBook - DELETE /v1/books/:id
// Cascades to every owned copy.
func (h *Handler) DeleteBook(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	err := h.service.DeleteBook(c.Request.Context(), ownerID, uuid.MustParse(id))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// ReorderBooks - POST /v1/books/reorder
// One drag-and-drop move; the response carries the new ordered id list so
// the client can reconcile its optimistic state.
func (h *Handler) ReorderBooks(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.ReorderBooksRequest
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

	order, err := h.service.ReorderBooks(c.Request.Context(), ownerID,
		uuid.MustParse(req.DraggedID), uuid.MustParse(req.TargetID))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Books reordered successfully", gin.H{"order": order})
}
