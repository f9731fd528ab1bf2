package treatment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/treatment"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Handler struct {
	svc *treatment.Service
}

func NewHandler(svc *treatment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/treatments", h.ListTreatments)
	r.POST("/treatments", h.CreateTreatment)
	r.GET("/treatment/:id", h.GetTreatment)
	r.PUT("/treatment/:id", h.UpdateTreatment)
	r.DELETE("/treatment/:id", h.DeleteTreatment)
}

func (h *Handler) CreateTreatment(c *gin.Context) {
	var req model.TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	created, err := h.svc.CreateTreatment(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetTreatment(c *gin.Context) {
	t, err := h.svc.GetTreatment(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) ListTreatments(c *gin.Context) {
	treatments, err := h.svc.ListTreatments(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewListResponse(len(treatments), treatments))
}

func (h *Handler) UpdateTreatment(c *gin.Context) {
	var req model.TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	if err := h.svc.UpdateTreatment(c.Request.Context(), c.Param("id"), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("treatment updated successfully"))
}

func (h *Handler) DeleteTreatment(c *gin.Context) {
	if err := h.svc.DeleteTreatment(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("treatment deleted successfully"))
}
