package invitations

import (
	"net/http"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/httpkit"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateInvitationRequest captures a guest invitation.
type CreateInvitationRequest struct {
	GuestName    string `json:"guestName" validate:"required,min=1,max=100"`
	GuestPhone   string `json:"guestPhone" validate:"required,min=5,max=20"`
	HostMemberID string `json:"hostMemberId" validate:"required,uuid"`
}

// InvitationResponse is one invitation record.
type InvitationResponse struct {
	ID                string    `json:"id"`
	GuestName         string    `json:"guestName"`
	GuestPhone        string    `json:"guestPhone"`
	GuestPhoneDisplay string    `json:"guestPhoneDisplay"`
	HostMemberID      string    `json:"hostMemberId"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Handler handles HTTP requests for invitations.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new invitations handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts invitation routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]InvitationResponse, len(records))
	for i, record := range records {
		items[i] = toInvitationResponse(record)
	}
	httpkit.OK(c, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	hostID, err := uuid.Parse(req.HostMemberID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid hostMemberId", nil)
		return
	}

	record, err := h.svc.Create(c.Request.Context(), req.GuestName, req.GuestPhone, hostID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toInvitationResponse(record))
}

func toInvitationResponse(record Invitation) InvitationResponse {
	return InvitationResponse{
		ID:                record.ID.String(),
		GuestName:         record.GuestName,
		GuestPhone:        record.GuestPhone,
		GuestPhoneDisplay: phone.FormatDisplay(record.GuestPhone),
		HostMemberID:      record.HostMemberID.String(),
		CreatedAt:         record.CreatedAt,
	}
}
