package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ratepulse/internal/domain/dto"
	"github.com/guttosm/ratepulse/internal/domain/models"
	"github.com/guttosm/ratepulse/internal/middleware"
	"github.com/guttosm/ratepulse/internal/service"
)

// Handler provides HTTP handlers for the rate-matrix endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the aggregation service
//   - Translate service results and errors into JSON responses
type Handler struct {
	svc service.RateService
}

// NewHandler constructs a Handler over the aggregation service.
func NewHandler(svc service.RateService) *Handler {
	return &Handler{svc: svc}
}

// ratesQuery mirrors the request validation rules of the rates
// endpoint: days is required and limited to the four horizon tokens;
// currency and occupancy fall back to EUR and single occupancy.
type ratesQuery struct {
	Days      string `form:"days" binding:"required,oneof=DAYS_7 DAYS_14 DAYS_30 DAYS_60"`
	Currency  string `form:"currency" binding:"omitempty,oneof=EUR USD GBP JPY CAD"`
	Occupancy string `form:"occupancy" binding:"omitempty,oneof=pr1 pr2"`
}

// GetRates handles GET /api/v1/rates requests.
//
// GetRates godoc
// @Summary      Get the aggregated rate matrix
// @Description  Returns the lowest nightly rate per date and property over the requested horizon, as a chart-ready array of rows. The first row is the header ["Date", property names...]; every following row is [date, price-or-null, ...].
// @Tags         rates
// @Produce      json
// @Param        days       query     string  true   "Horizon token"        Enums(DAYS_7, DAYS_14, DAYS_30, DAYS_60)
// @Param        currency   query     string  false  "Display currency"     Enums(EUR, USD, GBP, JPY, CAD)  default(EUR)
// @Param        occupancy  query     string  false  "Occupancy mode"       Enums(pr1, pr2)                 default(pr1)
// @Success      200        {array}   interface{}        "Chart payload"
// @Failure      400        {object}  dto.ErrorResponse  "Invalid input"
// @Failure      502        {object}  dto.ErrorResponse  "Upstream unavailable"
// @Router       /api/v1/rates [get]
func (h *Handler) GetRates(c *gin.Context) {
	var q ratesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	// Binding already constrained the values; parsing maps them onto
	// domain types and applies the defaults.
	horizonDays, err := models.ParseHorizon(q.Days)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid days", err)
		return
	}
	currency, err := models.ParseCurrency(q.Currency)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid currency", err)
		return
	}
	occupancy, err := models.ParseOccupancy(q.Occupancy)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid occupancy", err)
		return
	}

	matrix, err := h.svc.GetMatrix(c.Request.Context(), horizonDays, currency, occupancy)
	if err != nil {
		status, message := mapServiceError(err)
		middleware.AbortWithError(c, status, message, err)
		return
	}

	c.JSON(http.StatusOK, matrix.Chart())
}

// GetProperties handles GET /api/v1/properties requests.
//
// GetProperties godoc
// @Summary      List accessible properties
// @Description  Returns rich property metadata (address, stars, facilities, images) for every site the configured credentials can access.
// @Tags         properties
// @Produce      json
// @Success      200  {object}  dto.PropertiesResponse  "Success"
// @Failure      502  {object}  dto.ErrorResponse       "Upstream unavailable"
// @Router       /api/v1/properties [get]
func (h *Handler) GetProperties(c *gin.Context) {
	properties, err := h.svc.GetProperties(c.Request.Context())
	if err != nil {
		status, message := mapServiceError(err)
		middleware.AbortWithError(c, status, message, err)
		return
	}

	c.JSON(http.StatusOK, dto.PropertiesResponse{Properties: properties})
}

// mapServiceError translates the service error taxonomy to HTTP.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "upstream provider unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
