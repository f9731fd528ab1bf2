package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/auth"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public authentication routes at the engine root,
// matching the paths the SPA calls.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.POST("/auth", h.Login)
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	if _, err := h.svc.Signup(c.Request.Context(), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewMessageResponse("doctor registered successfully"))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	// The SPA reads the token from the data field.
	c.JSON(http.StatusOK, handler.TokenResponse{Data: token})
}
