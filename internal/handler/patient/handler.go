package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/service/patient"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

type Handler struct {
	svc *patient.Service
}

func NewHandler(svc *patient.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients", h.ListPatients)
	r.POST("/patients", h.CreatePatient)
	r.GET("/patient/:id", h.GetPatient)
	r.PUT("/patient/:id", h.UpdatePatient)
	r.DELETE("/patient/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	created, err := h.svc.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatient(c *gin.Context) {
	p, err := h.svc.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.svc.ListPatients(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewListResponse(len(patients), patients))
}

// UpdatePatient overwrites the full field set and confirms with a message,
// not the updated document.
func (h *Handler) UpdatePatient(c *gin.Context) {
	var req model.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.Validation(handler.BindingError(err)))
		return
	}

	if err := h.svc.UpdatePatient(c.Request.Context(), c.Param("id"), &req); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("patient updated successfully"))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.svc.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("patient deleted successfully"))
}
