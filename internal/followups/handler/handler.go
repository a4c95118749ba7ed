// Package handler exposes the follow-ups module over HTTP.
package handler

import (
	"net/http"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/service"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/transport"
	"github.com/AmrAnter44/sys-body-sub004/platform/httpkit"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the consolidated worklist.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new follow-ups handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the follow-ups routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.ListLeads)
	group.GET("/leaderboard", h.Leaderboard)
	group.GET("/history/:phone", h.History)
	group.POST("", h.CreateInteraction)
	group.DELETE("/:id", h.DeleteInteraction)
}

// ListLeads returns the consolidated, filtered, prioritized worklist.
func (h *Handler) ListLeads(c *gin.Context) {
	var query transport.LeadListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	resp, err := h.svc.GetConsolidatedLeads(c.Request.Context(), query, currentSalesName(c))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Leaderboard returns per-salesperson conversion and workload stats.
func (h *Handler) Leaderboard(c *gin.Context) {
	stats, err := h.svc.GetLeaderboard(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"items": stats})
}

// History returns the full interaction history for one lead phone.
func (h *Handler) History(c *gin.Context) {
	resp, err := h.svc.History(c.Request.Context(), c.Param("phone"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// CreateInteraction logs a new follow-up interaction against a lead.
func (h *Handler) CreateInteraction(c *gin.Context) {
	var req transport.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	created, err := h.svc.CreateInteraction(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, created)
}

// DeleteInteraction removes a persisted interaction. Synthesized lead ids
// are rejected by the service with a validation error.
func (h *Handler) DeleteInteraction(c *gin.Context) {
	if err := h.svc.DeleteInteraction(c.Request.Context(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

func currentSalesName(c *gin.Context) string {
	if name, ok := c.Get(httpkit.ContextSalesNameKey); ok {
		if text, ok := name.(string); ok {
			return text
		}
	}
	return ""
}
