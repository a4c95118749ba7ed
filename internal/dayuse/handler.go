package dayuse

import (
	"net/http"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/httpkit"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/gin-gonic/gin"
)

// CreateRecordRequest captures a day-use visit.
type CreateRecordRequest struct {
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Phone     string    `json:"phone" validate:"required,min=5,max=20"`
	VisitDate time.Time `json:"visitDate"`
}

// RecordResponse is one day-use record.
type RecordResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phoneDisplay"`
	VisitDate    time.Time `json:"visitDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Handler handles HTTP requests for day-use records.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new day-use handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts day-use routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]RecordResponse, len(records))
	for i, record := range records {
		items[i] = toRecordResponse(record)
	}
	httpkit.OK(c, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.svc.Create(c.Request.Context(), req.Name, req.Phone, req.VisitDate)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toRecordResponse(record))
}

func toRecordResponse(record Record) RecordResponse {
	return RecordResponse{
		ID:           record.ID.String(),
		Name:         record.Name,
		Phone:        record.Phone,
		PhoneDisplay: phone.FormatDisplay(record.Phone),
		VisitDate:    record.VisitDate,
		CreatedAt:    record.CreatedAt,
	}
}
