package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "onboarding-backend/internal/common/errors"
	"onboarding-backend/internal/common/logger"
)

// RequestID attaches an ID to every request, echoing an inbound X-Request-ID
// when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs every processed request with method, path, status and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("body_size", c.Writer.Size()).
			Msg("Request processed")
	}
}

// Recovery converts panics into a generic 500 JSON envelope instead of
// killing the process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	})
}

// AbortWithError maps an application error to its HTTP status and writes the
// {success:false, message} envelope. Internal causes are logged server-side
// while the client message stays generic.
func AbortWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}

	if appErr.IsInternal() {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("error_code", string(appErr.Code)).
			Err(appErr.Cause).
			Msg(appErr.Message)
	} else {
		logger.Info().
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Str("error_code", string(appErr.Code)).
			Msg(appErr.Message)
	}

	c.AbortWithStatusJSON(statusCode(appErr), gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

func statusCode(appErr *apperrors.AppError) int {
	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeAuthentication:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeDependency, apperrors.ErrCodePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetRequestID returns the request ID set by RequestID, or "unknown".
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
