package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "onboarding-backend/internal/common/errors"
	"onboarding-backend/internal/common/middleware"
	"onboarding-backend/internal/features/auth/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/send-otp", h.SendOTP)
	router.POST("/verify-otp", h.VerifyOTP)
}

type sendOTPRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// @Summary Send OTP
// @Description Issue a 6-digit code for the email and deliver it by mail
// @Tags auth
// @Accept json
// @Produce json
// @Param request body sendOTPRequest true "User identity"
// @Success 200 {object} map[string]interface{} "Acknowledgement"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 500 {object} map[string]interface{} "Mail dispatch failed"
// @Router /send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Missing fields"))
		return
	}

	if err := h.service.SendOTP(c.Request.Context(), req.Name, req.Phone, req.Email); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully!",
	})
}

// @Summary Verify OTP
// @Description Verify the submitted code and mark the user verified
// @Tags auth
// @Accept json
// @Produce json
// @Param request body verifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]interface{} "Verified user"
// @Failure 400 {object} map[string]interface{} "Missing fields or invalid OTP"
// @Router /verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Missing fields"))
		return
	}

	user, err := h.service.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User verified",
		"user":    user,
	})
}
