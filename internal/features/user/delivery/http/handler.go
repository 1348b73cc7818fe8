package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding-backend/internal/common/middleware"
	"onboarding-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/user/:email", h.GetUser)
}

// @Summary Get user by email
// @Description Get stored user record by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]interface{} "User data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user/{email} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
