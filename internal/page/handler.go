// File: internal/page/handler.go
package page

import (
	"errors"
	"net/http"
	"time"

	"teeup_backend/internal/booking"
	"teeup_backend/internal/common"
	"teeup_backend/internal/config"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/theme"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FallbackHeader is set when an unknown slug was rendered as the default profile.
const FallbackHeader = "X-Profile-Fallback"

// Handler renders the public HTML pages.
type Handler struct {
	store      *profile.Store
	bookings   booking.BookingService
	themes     theme.Service
	kakaoURL   string
	scrollIdle time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewHandler creates a new page handler.
func NewHandler(store *profile.Store, bookings booking.BookingService, themes theme.Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		bookings:   bookings,
		themes:     themes,
		kakaoURL:   kakaoURL(cfg.KakaoChannelID),
		scrollIdle: cfg.ScrollIdleDelay,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterRoutes sets up the page routes. The engine must have the page templates loaded.
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.home)
	router.GET("/profile", h.defaultProfile)
	router.GET("/profile/:slug", h.showProfile)
	router.POST("/profile/:slug/booking", h.submitBooking)
}

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, homeTemplate, homeView{Profiles: h.store.List()})
}

func (h *Handler) defaultProfile(c *gin.Context) {
	c.Redirect(http.StatusFound, "/profile/"+h.store.DefaultSlug())
}

// resolve looks the slug up, rendering the default profile for unknown slugs.
func (h *Handler) resolve(c *gin.Context) (string, profile.Profile, bool) {
	requested := c.Param("slug")
	p, fellBack := h.store.Resolve(requested)
	if !fellBack {
		return requested, p, false
	}
	slug := h.store.DefaultSlug()
	c.Header(FallbackHeader, slug)
	common.LoggerFromContext(c, h.logger).Warn("Unknown profile slug; rendering default profile",
		zap.String("requested_slug", requested), zap.String("default_slug", slug))
	return slug, p, true
}

// pageTheme loads the pro's theme; a failed lookup renders the default theme.
func (h *Handler) pageTheme(c *gin.Context, slug string) profile.Theme {
	t, err := h.themes.Get(c.Request.Context(), slug)
	if err != nil {
		common.LoggerFromContext(c, h.logger).Warn("Theme lookup failed; using default theme",
			zap.String("slug", slug), zap.Error(err))
		return profile.DefaultTheme()
	}
	return t
}

func (h *Handler) baseView(c *gin.Context, slug string, p profile.Profile, fellBack bool, day, slot string) profileView {
	days := booking.Days(h.now(), booking.ScheduleDays)
	selectedDay, selectedSlot, _ := scheduleSelection(days, day, slot)
	return profileView{
		Slug:         slug,
		Profile:      p,
		Theme:        newThemeView(h.pageTheme(c, slug)),
		FellBack:     fellBack,
		Days:         days,
		Slots:        booking.Slots,
		SelectedDay:  selectedDay,
		SelectedSlot: selectedSlot,
		Modal:        booking.Closed(),
		KakaoURL:     h.kakaoURL,
		ScrollIdleMS: h.scrollIdle.Milliseconds(),
	}
}

func (h *Handler) showProfile(c *gin.Context) {
	slug, p, fellBack := h.resolve(c)
	view := h.baseView(c, slug, p, fellBack, c.Query("day"), c.Query("slot"))

	// ?book=reservation|waitlist opens the modal for the selected slot.
	if kind := booking.Kind(c.Query("book")); kind.Valid() {
		_, _, selected := scheduleSelection(view.Days, c.Query("day"), c.Query("slot"))
		view.Modal = booking.Open(view.Modal, p.Profile.Name, nil, selected, kind)
		view.Missing = booking.MissingFields(view.Modal.Form)
	}
	c.HTML(http.StatusOK, profileTemplate, view)
}

func (h *Handler) submitBooking(c *gin.Context) {
	slug, p, fellBack := h.resolve(c)

	var req booking.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		common.LoggerFromContext(c, h.logger).Debug("Booking form rejected", zap.Error(err))
		req = booking.SubmitRequest{Type: req.Type, Name: req.Name, Phone: req.Phone, Agree: req.Agree}
	}
	kind := req.Type
	if !kind.Valid() {
		kind = booking.KindReservation
	}

	day, slot := c.PostForm("day"), c.PostForm("slot")
	view := h.baseView(c, slug, p, fellBack, day, slot)
	_, _, selected := scheduleSelection(view.Days, day, slot)

	modal, _, err := h.bookings.Submit(c.Request.Context(), kind, p.Profile.Name, selected, req.Form())
	view.Modal = modal
	view.CanSubmit = booking.CanSubmit(modal)
	view.Missing = booking.MissingFields(modal.Form)

	switch {
	case err == nil:
		c.HTML(http.StatusOK, profileTemplate, view)
	case errors.Is(err, booking.ErrSubmitDisabled):
		c.HTML(http.StatusUnprocessableEntity, profileTemplate, view)
	default:
		common.LoggerFromContext(c, h.logger).Error("Booking submission failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, profileTemplate, view)
	}
}
