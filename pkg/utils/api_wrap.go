package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrDuplicateID):
		RespondError(c, http.StatusConflict, "An entity with this id already exists")
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrUnknownStatus):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAlreadyReverted), errors.Is(err, ErrNoSnapshot):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPoorQualityInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrSnapshotVersion), errors.Is(err, ErrMalformedBackup):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrResetTokenInvalid):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrDatabaseDisabled), errors.Is(err, ErrMailNotConfigured), errors.Is(err, ErrAINotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrUnexpectedBehaviorOfAI), errors.Is(err, ErrMalformedAIResponse):
		log.Printf("AI error: %v", err)
		RespondError(c, http.StatusBadGateway, "The itinerary generator returned an unusable response")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
