package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimitConfig caps request body sizes, with a higher allowance on the
// multipart upload paths.
type SizeLimitConfig struct {
	MaxBodySize   int64
	MaxUploadSize int64
	UploadPaths   []string
}

func DefaultSizeLimitConfig() SizeLimitConfig {
	return SizeLimitConfig{
		MaxBodySize:   1 << 20, // 1MB
		MaxUploadSize: 8 << 20, // headroom over the 5MB image limit for multipart framing
		UploadPaths:   []string{"/api/doctor/upload-image"},
	}
}

// SizeLimit rejects oversized requests before handlers read the body.
func SizeLimit(config SizeLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := config.MaxBodySize
		for _, path := range config.UploadPaths {
			if c.Request.URL.Path == path {
				limit = config.MaxUploadSize
				break
			}
		}

		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"message": "request size exceeds limit",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
