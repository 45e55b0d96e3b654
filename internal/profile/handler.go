// File: internal/profile/handler.go
package profile

import (
	"net/http"

	"teeup_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFoundMessage is the body message for unknown slugs on the JSON API.
const NotFoundMessage = "Profile not found"

// Handler serves the read-only profile API.
type Handler struct {
	store    *Store
	searcher Searcher
	logger   *zap.Logger
}

func NewHandler(store *Store, searcher Searcher, logger *zap.Logger) *Handler {
	return &Handler{store: store, searcher: searcher, logger: logger}
}

// RegisterRoutes sets up the routes for profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	profileGroup := router.Group("/profiles")
	{
		profileGroup.GET("", h.listProfiles)
		profileGroup.GET("/search", h.searchProfiles)
		profileGroup.GET("/:slug", h.getProfile)
	}
}

func (h *Handler) listProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) getProfile(c *gin.Context) {
	p, ok := h.store.Get(c.Param("slug"))
	if !ok {
		common.RespondMessage(c, http.StatusNotFound, NotFoundMessage)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) searchProfiles(c *gin.Context) {
	results, err := h.searcher.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		common.LoggerFromContext(c, h.logger).Error("Profile search failed", zap.Error(err))
		common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Profile search is temporarily unavailable."))
		return
	}
	c.JSON(http.StatusOK, results)
}
