package auth

import (
	"net/http"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/httpkit"
	"github.com/AmrAnter44/sys-body-sub004/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoginRequest carries staff login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterRequest creates a new staff account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// StaffResponse is a staff account without credential fields.
type StaffResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is a successful login payload.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        StaffResponse `json:"user"`
}

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates a new auth handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes mounts unauthenticated auth routes.
func (h *Handler) RegisterPublicRoutes(group *gin.RouterGroup) {
	group.POST("/login", h.Login)
}

// RegisterProtectedRoutes mounts authenticated auth routes.
func (h *Handler) RegisterProtectedRoutes(group *gin.RouterGroup) {
	group.POST("/register", h.Register)
	group.GET("/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        toStaffResponse(result.User),
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toStaffResponse(user))
}

// Me returns the identity bound to the presented token.
func (h *Handler) Me(c *gin.Context) {
	var userID string
	if raw, ok := c.Get(httpkit.ContextUserIDKey); ok {
		if id, ok := raw.(uuid.UUID); ok {
			userID = id.String()
		}
	}
	httpkit.OK(c, gin.H{
		"userId":    userID,
		"salesName": c.GetString(httpkit.ContextSalesNameKey),
	})
}

func toStaffResponse(user StaffUser) StaffResponse {
	return StaffResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
