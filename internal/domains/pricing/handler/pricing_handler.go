package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/domains/pricing/model"
	"shelftrack-backend/internal/domains/pricing/service"
	"shelftrack-backend/internal/shared/middleware"
	"shelftrack-backend/internal/shared/response"
)

// Handler is the HTTP layer for price estimation.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Estimate - POST /v1/pricing/estimate
func (h *Handler) Estimate(c *gin.Context) {
	if _, ok := middleware.OwnerID(c); !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid estimate request", err)
		return
	}

	estimate, err := h.service.Estimate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEstimatorDisabled), errors.Is(err, model.ErrEstimatorDown):
			response.BadGateway(c, err.Error())
		case errors.Is(err, model.ErrUnusableEstimate):
			response.BadGateway(c, "estimator returned no usable price")
		default:
			log.Error().Err(err).Msg("price estimation failed")
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "Estimate computed successfully", estimate)
}
