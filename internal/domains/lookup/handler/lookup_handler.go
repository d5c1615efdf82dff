package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/domains/lookup/model"
	"shelftrack-backend/internal/domains/lookup/service"
	"shelftrack-backend/internal/shared/middleware"
	"shelftrack-backend/internal/shared/response"
)

// Handler is the HTTP layer for ISBN metadata resolution.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Lookup - POST /v1/lookup
// Accepts an ISBN (typically a decoded EAN-13 barcode) and answers with
// either a local duplicate or metadata to confirm as a new book.
func (h *Handler) Lookup(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lookup request", err)
		return
	}

	result, err := h.service.Lookup(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoMatch):
			response.NotFound(c, "no book found for this ISBN")
		case errors.Is(err, model.ErrProviderDown):
			response.BadGateway(c, err.Error())
		default:
			log.Error().Err(err).Msg("lookup failed")
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Lookup completed successfully", result)
}
