package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "techmend/internal/adapter/http/dto/response"
	"techmend/internal/adapter/http/middleware"
	"techmend/internal/usecase"
	"techmend/pkg"

	"github.com/gin-gonic/gin"
)

type RepairPaymentHandler struct {
	usecase usecase.IRepairPaymentUseCase
}

func NewRepairPaymentHandler(uc usecase.IRepairPaymentUseCase) *RepairPaymentHandler {
	return &RepairPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary  Charge a repair through the payment gateway
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    number  path string true "Request number"
// @Param    payload body object true "Gateway payment payload"
// @Success  201 {object} response.RepairPaymentResponse
// @Failure  402 {object} pkg.HTTPError
// @Router   /payments/{number} [post]
func (h *RepairPaymentHandler) CreatePayment(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreateAndApprove(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number"), json.RawMessage(body))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRepairPayment(payment))
}

// ListPayments godoc
// @Summary  List payments recorded for a request
// @Tags     payments
// @Produce  json
// @Param    number path string true "Request number"
// @Success  200 {array} response.RepairPaymentResponse
// @Router   /payments/{number} [get]
func (h *RepairPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByRequestNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestNumber),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor lacks the required capability", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotPayable):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PAYABLE", "Request is not ready for payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment gateway rejected the payload", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_UNAUTHORIZED", "Payment gateway credentials rejected", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
