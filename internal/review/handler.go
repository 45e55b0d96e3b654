// File: internal/review/handler.go
package review

import (
	"net/http"
	"strconv"

	"teeup_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for admin review handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new review handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the admin review routes behind adminMW.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, adminMW gin.HandlerFunc) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(adminMW)
	{
		adminGroup.GET("/applications", h.listApplications)
		adminGroup.POST("/applications/:id/approve", h.approveApplication)
		adminGroup.POST("/applications/:id/reject", h.rejectApplication)
		adminGroup.GET("/pros", h.listApprovedPros)
	}
}

func (h *Handler) listApplications(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot(c.Request.Context()))
}

func (h *Handler) approveApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	counts, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.LoggerFromContext(c, h.logger).Info("Application approved",
		zap.Int64("applicationID", id), zap.String("adminUID", common.GetAdminUIDFromContext(c)))
	common.RespondOK(c, "Application approved.", counts)
}

func (h *Handler) rejectApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	counts, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.LoggerFromContext(c, h.logger).Info("Application rejected",
		zap.Int64("applicationID", id), zap.String("adminUID", common.GetAdminUIDFromContext(c)))
	common.RespondOK(c, "Application rejected.", counts)
}

func (h *Handler) listApprovedPros(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SearchApproved(c.Request.Context(), c.Query("q")))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid application ID format."))
		return 0, false
	}
	return id, true
}
