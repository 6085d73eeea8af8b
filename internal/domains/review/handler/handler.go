package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/domains/review/model"
	"whatsapp-reviews/internal/domains/review/service"
	"whatsapp-reviews/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews returns the newest reviews as a bare JSON array
// GET /api/reviews?limit=&offset=
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var req model.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ErrCodeInvalidQuery,
			"limit and offset must be integers", err.Error())
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("list reviews failed")
		response.InternalServerError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
