package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	apperrors "github.com/clinicdesk/clinic-api/pkg/errors"
)

// MessageResponse is the confirmation shape used where the API returns a
// message rather than a document (updates, deletes, signup).
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps collection reads with their record count.
type ListResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Data string `json:"data"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func NewListResponse(count int, data interface{}) ListResponse {
	return ListResponse{Count: count, Data: data}
}

// RespondError maps an application error to its HTTP status and the
// {message} error shape the SPA consumes verbatim.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Code == apperrors.ErrInternal {
			log.Error().Err(appErr.Err).Str("path", c.Request.URL.Path).Msg("request failed")
		}
		c.JSON(appErr.StatusCode(), MessageResponse{Message: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
}

// BindingError turns a gin binding failure into the first offending field's
// message, mirroring all-or-nothing required-field validation.
func BindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email", fe.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	var serr *json.SyntaxError
	var terr *json.UnmarshalTypeError
	if errors.As(err, &serr) || errors.As(err, &terr) {
		return "invalid request body"
	}
	return err.Error()
}
