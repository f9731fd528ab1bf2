package doctor

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/handler"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/internal/service/doctor"
	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
	"github.com/clinicdesk/clinic-api/pkg/metrics"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type Handler struct {
	svc       *doctor.Service
	uploadDir string
	metrics   *metrics.Metrics
}

func NewHandler(svc *doctor.Service, uploadDir string, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, uploadDir: uploadDir, metrics: m}
}

// RegisterRoutes mounts the doctor routes. The profile route must be
// registered before the :id route so gin does not treat "profile" as an id.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctor/profile", h.GetProfile)
	r.GET("/doctor/:id", h.GetDoctor)
	r.POST("/doctor/upload-image", h.UploadImage)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewListResponse(len(doctors), doctors))
}

// GetProfile returns the record of the doctor identified by the bearer token.
func (h *Handler) GetProfile(c *gin.Context) {
	d, err := h.svc.GetDoctor(c.Request.Context(), c.GetString(middleware.ContextDoctorID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	d, err := h.svc.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

// UploadImage stores a profile image on disk and links it to the
// authenticated doctor. The file write and the database update are not
// transactional; only the doctor-not-found branch cleans up the file.
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.metrics.UploadsFailed.Inc()
		handler.RespondError(c, apperrors.Validation("no file uploaded"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		h.metrics.UploadsFailed.Inc()
		handler.RespondError(c, apperrors.Validation("only image files are allowed"))
		return
	}

	if file.Size > maxImageSize {
		h.metrics.UploadsFailed.Inc()
		handler.RespondError(c, apperrors.Validation("image exceeds the 5MB size limit"))
		return
	}

	filename := fmt.Sprintf("doctor-%d%s", time.Now().UnixMilli(), ext)
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.metrics.UploadsFailed.Inc()
		handler.RespondError(c, apperrors.Internal(fmt.Errorf("failed to store upload: %w", err)))
		return
	}

	imageURL := "/uploads/" + filename
	d, err := h.svc.UpdateImage(c.Request.Context(), c.GetString(middleware.ContextDoctorID), imageURL)
	if err != nil {
		h.metrics.UploadsFailed.Inc()
		// The file is already on disk; do not leave it orphaned.
		if rmErr := os.Remove(dst); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", dst).Msg("failed to remove orphaned upload")
		}
		handler.RespondError(c, err)
		return
	}

	h.metrics.UploadsTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"doctor":  d,
	})
}
