// File: internal/theme/handler.go
package theme

import (
	"errors"
	"net/http"

	"teeup_backend/internal/common"
	"teeup_backend/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler serves pro page themes.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the public theme reads and the admin update behind adminMW.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, adminMW gin.HandlerFunc) {
	router.GET("/themes/default", h.getDefaultTheme)
	router.GET("/profiles/:slug/theme", h.getTheme)

	adminGroup := router.Group("/admin")
	adminGroup.Use(adminMW)
	{
		adminGroup.PUT("/profiles/:slug/theme", h.updateTheme)
	}
}

func (h *Handler) getDefaultTheme(c *gin.Context) {
	c.JSON(http.StatusOK, profile.DefaultTheme())
}

func (h *Handler) getTheme(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) updateTheme(c *gin.Context) {
	var req profile.ThemeUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request body: "+err.Error()))
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	common.LoggerFromContext(c, h.logger).Info("Pro theme updated",
		zap.String("slug", c.Param("slug")), zap.String("adminUID", common.GetAdminUIDFromContext(c)))
	common.RespondOK(c, "Theme updated.", t)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrProfileNotFound) {
		common.RespondMessage(c, http.StatusNotFound, profile.NotFoundMessage)
		return
	}
	if _, ok := common.IsAPIError(err); ok {
		common.RespondWithError(c, err)
		return
	}
	common.LoggerFromContext(c, h.logger).Error("Theme request failed", zap.Error(err))
	common.RespondWithError(c, common.ErrInternalServer.WithDetails("Theme could not be loaded or saved."))
}
