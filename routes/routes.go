package routes

import (
	"checkout-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterOrderRoutes wires the order lifecycle and verification endpoints.
func RegisterOrderRoutes(r *gin.Engine, oc *controllers.OrderController) {
	r.POST("/create", oc.CreateOrder)
	r.GET("/getall", oc.GetAllOrders)
	r.GET("/getbyid/:id", oc.GetOrderByID)
	r.GET("/getbyorderid/:orderId", oc.GetOrderByOrderID)
	r.PUT("/update/:id", oc.UpdateOrder)
	r.DELETE("/delete/:id", oc.DeleteOrder)
	r.POST("/verify", oc.VerifyPayment)
}

// RegisterCheckoutRoutes wires the storefront page and plan catalog.
func RegisterCheckoutRoutes(r *gin.Engine, cc *controllers.CheckoutController) {
	r.GET("/", cc.Storefront)
	r.GET("/plans", cc.ListPlans)
}
