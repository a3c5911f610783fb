package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmarques/predictpulse/internal/domain/apperr"
	"github.com/rmarques/predictpulse/internal/service"
	"github.com/rmarques/predictpulse/internal/validation"
)

// Handler provides HTTP handlers for the prediction endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the service layer for data access
//   - Map typed failures to HTTP status codes and the uniform error body
type Handler struct {
	svc service.PredictionService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PredictionService) *Handler {
	return &Handler{svc: svc}
}

// GetPrediction handles GET /predictions requests.
//
// GetPrediction godoc
// @Summary      Get latest prediction for a pair
// @Description  Returns the most recent price prediction for the given trading pair
// @Tags         predictions
// @Produce      json
// @Param        pair  query     string  true  "Trading pair" example(BTCUSDT)
// @Success      200   {object}  models.Prediction      "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Invalid pair"
// @Failure      404   {object}  dto.ErrorResponse      "No prediction for pair"
// @Failure      500   {object}  dto.ErrorResponse      "Storage failure"
// @Router       /predictions [get]
func (h *Handler) GetPrediction(c *gin.Context) {
	// The pair is gated, not sanitized: no trimming or case folding before
	// validation, and storage sees the exact submitted value.
	pair := c.Query("pair")
	if err := validation.ValidatePair(pair); err != nil {
		respondError(c, err)
		return
	}

	prediction, err := h.svc.GetLatest(c.Request.Context(), pair)
	if err != nil {
		respondError(c, err)
		return
	}
	if prediction == nil {
		// Absence is upgraded to a client-visible 404 here, not in storage.
		respondError(c, apperr.NotFound(pair))
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// GetAllLatest handles GET /predictions/latest requests.
//
// GetAllLatest godoc
// @Summary      Get latest prediction per pair
// @Description  Returns the most recent prediction for every trading pair present in storage
// @Tags         predictions
// @Produce      json
// @Success      200  {array}   models.Prediction  "Success (possibly empty array)"
// @Failure      500  {object}  dto.ErrorResponse  "Storage failure"
// @Router       /predictions/latest [get]
func (h *Handler) GetAllLatest(c *gin.Context) {
	predictions, err := h.svc.GetAllLatest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, predictions)
}
