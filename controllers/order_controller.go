package controllers

import (
	"net/http"

	"checkout-service/apperrors"
	"checkout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Service services.OrderAPI
	Logger  *zap.Logger
}

func NewOrderController(service services.OrderAPI, logger *zap.Logger) *OrderController {
	return &OrderController{Service: service, Logger: logger}
}

// CreateOrder creates a gateway order and persists the local record.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		Amount int64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive integer"})
		return
	}

	order, svcErr := oc.Service.Create(c.Request.Context(), req.Amount)
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, svcErr := oc.Service.GetAll(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, svcErr := oc.Service.GetByID(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) GetOrderByOrderID(c *gin.Context) {
	order, svcErr := oc.Service.GetByOrderID(c.Request.Context(), c.Param("orderId"))
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	order, svcErr := oc.Service.Update(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	order, svcErr := oc.Service.Delete(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		c.JSON(svcErr.Code, gin.H{"message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPayment authenticates the hosted checkout callback and, on success,
// marks the order paid.
func (oc *OrderController) VerifyPayment(c *gin.Context) {
	var req services.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "orderId, paymentId and signature are required",
			"isOk":    false,
		})
		return
	}

	order, svcErr := oc.Service.VerifyPayment(c.Request.Context(), &req)
	if svcErr != nil {
		body := gin.H{"message": svcErr.Message, "isOk": false}
		if svcErr.Code == http.StatusInternalServerError {
			body["message"] = "Database error during verification"
			body["error"] = svcErr.Error()
		}
		if svcErr.Code == http.StatusNotFound {
			body["message"] = "Order not found"
		}
		if apperrors.Is(svcErr, http.StatusBadRequest) {
			body["message"] = "Payment verification failed"
		}
		c.JSON(svcErr.Code, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"isOk":    true,
		"order":   order,
	})
}
