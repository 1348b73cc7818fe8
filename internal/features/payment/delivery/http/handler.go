package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "onboarding-backend/internal/common/errors"
	"onboarding-backend/internal/common/middleware"
	"onboarding-backend/internal/features/payment/service"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create-order", h.CreateOrder)
	router.POST("/verify-payment", h.VerifyPayment)
}

type createOrderRequest struct {
	Amount float64 `json:"amount"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// @Summary Create payment order
// @Description Create a gateway order for the given amount in rupees
// @Tags payments
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "Amount"
// @Success 200 {object} map[string]interface{} "Gateway order"
// @Failure 400 {object} map[string]interface{} "Invalid amount"
// @Failure 500 {object} map[string]interface{} "Gateway error"
// @Router /create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid amount"))
		return
	}

	order, err := h.service.CreateOrder(req.Amount)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

// @Summary Verify payment signature
// @Description Check the gateway signature for an order/payment pair
// @Tags payments
// @Accept json
// @Produce json
// @Param request body verifyPaymentRequest true "Order, payment and signature"
// @Success 200 {object} map[string]interface{} "Acknowledgement"
// @Failure 400 {object} map[string]interface{} "Missing fields or invalid signature"
// @Router /verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Missing fields"))
		return
	}

	if err := h.service.VerifyPayment(req.OrderID, req.PaymentID, req.Signature); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified",
	})
}
