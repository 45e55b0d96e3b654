// File: internal/booking/handler.go
package booking

import (
	"errors"
	"net/http"

	"teeup_backend/internal/common"
	"teeup_backend/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for booking handlers.
type Handler struct {
	service BookingService
	store   *profile.Store
	logger  *zap.Logger
}

// NewHandler creates a new booking handler.
func NewHandler(service BookingService, store *profile.Store, logger *zap.Logger) *Handler {
	return &Handler{service: service, store: store, logger: logger}
}

// RegisterRoutes sets up the routes for booking operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/bookings", h.submitBooking)
}

func (h *Handler) submitBooking(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Submit booking: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request body: "+err.Error()))
		return
	}

	p, ok := h.store.Get(req.ProSlug)
	if !ok {
		common.RespondMessage(c, http.StatusNotFound, profile.NotFoundMessage)
		return
	}

	kind := req.Type
	if kind == "" {
		kind = KindReservation
	}
	_, submitted, err := h.service.Submit(c.Request.Context(), kind, p.Profile.Name, req.SelectedDateTime, req.Form())
	if err != nil {
		if errors.Is(err, ErrSubmitDisabled) {
			details := make(map[string]string)
			for _, field := range MissingFields(req.Form()) {
				details[field] = "The " + field + " field is required."
			}
			common.RespondWithError(c, common.NewValidationAPIError(details))
			return
		}
		common.RespondWithError(c, err)
		return
	}

	common.RespondAccepted(c, "Booking request received.", SubmitResult{State: StateSubmitted, RequestID: submitted.RequestID})
}
