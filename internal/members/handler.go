package members

import (
	"net/http"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/httpkit"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateMemberRequest registers a new gym member.
type CreateMemberRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	Phone      string    `json:"phone" validate:"required,min=5,max=20"`
	IsActive   bool      `json:"isActive"`
	ExpiryDate time.Time `json:"expiryDate" validate:"required"`
}

// SetActiveRequest flips a member's active flag.
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// MemberResponse is one member record.
type MemberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phoneDisplay"`
	IsActive     bool      `json:"isActive"`
	ExpiryDate   time.Time `json:"expiryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Handler handles HTTP requests for member records.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new members handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts member routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.PATCH("/:id/active", h.SetActive)
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]MemberResponse, len(records))
	for i, record := range records {
		items[i] = toMemberResponse(record)
	}
	httpkit.OK(c, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.svc.Create(c.Request.Context(), req.Name, req.Phone, req.IsActive, req.ExpiryDate)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toMemberResponse(record))
}

func (h *Handler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid member id", nil)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	record, err := h.svc.SetActive(c.Request.Context(), id, req.IsActive)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toMemberResponse(record))
}

func toMemberResponse(record Member) MemberResponse {
	return MemberResponse{
		ID:           record.ID.String(),
		Name:         record.Name,
		Phone:        record.Phone,
		PhoneDisplay: phone.FormatDisplay(record.Phone),
		IsActive:     record.IsActive,
		ExpiryDate:   record.ExpiryDate,
		CreatedAt:    record.CreatedAt,
	}
}
