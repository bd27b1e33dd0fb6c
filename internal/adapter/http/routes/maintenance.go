package routes

import (
	"techmend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addMaintenanceRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.MaintenanceRequestHandler,
	paymentHandler *handlers.RepairPaymentHandler,
	uploadHandler *handlers.UploadHandler,
) {
	requests := rg.Group("/requests")
	requests.POST("", requestHandler.CreateRequest)
	requests.GET("", requestHandler.ListRequests)
	requests.GET("/:number", requestHandler.GetRequest)
	requests.DELETE("/:number", requestHandler.DeleteRequest)
	requests.POST("/:number/diagnosis", requestHandler.AddDiagnosis)
	requests.PATCH("/:number/status", requestHandler.UpdateStatus)
	requests.POST("/:number/approval", requestHandler.RecordApproval)
	requests.PATCH("/:number/payment-status", requestHandler.UpdatePaymentStatus)
	requests.PATCH("/:number/shipping", requestHandler.UpdateShipping)
	requests.POST("/:number/technician", requestHandler.AssignTechnician)

	payments := rg.Group("/payments")
	payments.POST("/:number", paymentHandler.CreatePayment)
	payments.GET("/:number", paymentHandler.ListPayments)

	rg.POST("/uploads", uploadHandler.UploadImages)
}
