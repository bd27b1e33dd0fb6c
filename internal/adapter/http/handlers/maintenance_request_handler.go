package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "techmend/internal/adapter/http/dto/request"
	response "techmend/internal/adapter/http/dto/response"
	"techmend/internal/adapter/http/middleware"
	"techmend/internal/domain/entities"
	"techmend/internal/usecase"
	"techmend/internal/usecase/interfaces"
	"techmend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// MaintenanceRequestHandler handles HTTP requests for the repair ticket
// lifecycle.

type MaintenanceRequestHandler struct {
	usecase usecase.IMaintenanceRequestUseCase
}

func NewMaintenanceRequestHandler(uc usecase.IMaintenanceRequestUseCase) *MaintenanceRequestHandler {
	return &MaintenanceRequestHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary  Create a maintenance request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateMaintenanceRequestRequest true "Intake payload"
// @Success  201 {object} response.MaintenanceRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /requests [post]
func (h *MaintenanceRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), middleware.ActorFromContext(c), payload.ToInput())
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaintenanceRequest(created))
}

// ListRequests godoc
// @Summary  List maintenance requests
// @Tags     requests
// @Produce  json
// @Param    status   query string false "Filter by lifecycle status"
// @Param    priority query string false "Filter by priority"
// @Param    q        query string false "Free-text search (number, customer name, phone)"
// @Param    limit    query int    false "Page size (max 100)"
// @Param    cursor   query string false "Pagination cursor"
// @Success  200 {object} response.MaintenanceRequestListResponse
// @Router   /requests [get]
func (h *MaintenanceRequestHandler) ListRequests(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	filter := interfaces.ListFilter{
		Status:   entities.RequestStatus(c.Query("status")),
		Priority: entities.Priority(c.Query("priority")),
		Query:    c.Query("q"),
		Limit:    int32(limit),
		Cursor:   c.Query("cursor"),
	}

	items, nextCursor, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequestList(items, nextCursor))
}

// GetRequest godoc
// @Summary  Fetch one maintenance request
// @Tags     requests
// @Produce  json
// @Param    number path string true "Request number"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /requests/{number} [get]
func (h *MaintenanceRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// AddDiagnosis godoc
// @Summary  Attach a diagnosis to a request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                   true "Request number"
// @Param    payload body request.DiagnosisRequest true "Diagnosis"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Router   /requests/{number}/diagnosis [post]
func (h *MaintenanceRequestHandler) AddDiagnosis(c *gin.Context) {
	var payload request.DiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.AddDiagnosis(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number"), payload.ToInput())
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// UpdateStatus godoc
// @Summary  Execute a lifecycle transition
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                      true "Request number"
// @Param    payload body request.UpdateStatusRequest true "Target status and optional note"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /requests/{number}/status [patch]
func (h *MaintenanceRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		middleware.ActorFromContext(c),
		c.Param("number"),
		entities.RequestStatus(payload.Status),
		payload.Note,
	)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// RecordApproval godoc
// @Summary  Record the customer's approval decision
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                  true "Request number"
// @Param    payload body request.ApprovalRequest true "Decision"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Router   /requests/{number}/approval [post]
func (h *MaintenanceRequestHandler) RecordApproval(c *gin.Context) {
	var payload request.ApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.RecordApproval(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number"), payload.ToInput())
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// UpdatePaymentStatus godoc
// @Summary  Update the payment status
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                             true "Request number"
// @Param    payload body request.UpdatePaymentStatusRequest true "Payment status"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Router   /requests/{number}/payment-status [patch]
func (h *MaintenanceRequestHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.UpdatePaymentStatus(
		c.Request.Context(),
		middleware.ActorFromContext(c),
		c.Param("number"),
		entities.PaymentStatus(payload.Status),
	)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// UpdateShipping godoc
// @Summary  Update the shipping sub-state
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                        true "Request number"
// @Param    payload body request.UpdateShippingRequest true "Shipping update"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Failure  412 {object} pkg.HTTPError
// @Router   /requests/{number}/shipping [patch]
func (h *MaintenanceRequestHandler) UpdateShipping(c *gin.Context) {
	var payload request.UpdateShippingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.UpdateShipping(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number"), payload.ToInput())
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// AssignTechnician godoc
// @Summary  Assign a technician
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    number  path string                          true "Request number"
// @Param    payload body request.AssignTechnicianRequest true "Technician"
// @Success  200 {object} response.MaintenanceRequestResponse
// @Router   /requests/{number}/technician [post]
func (h *MaintenanceRequestHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.AssignTechnician(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number"), usecase.TechnicianInput{
		ID:             payload.ID,
		Name:           payload.Name,
		Specialization: payload.Specialization,
	})
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceRequest(req))
}

// DeleteRequest godoc
// @Summary  Delete an admin-sourced request
// @Tags     requests
// @Param    number path string true "Request number"
// @Success  204
// @Failure  403 {object} pkg.HTTPError
// @Router   /requests/{number} [delete]
func (h *MaintenanceRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFromContext(c), c.Param("number")); err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMaintenanceError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_ERROR", validationErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequestNumber),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor lacks the required capability", http.StatusForbidden)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition is not allowed from the current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrShippingNotRequired):
		return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", "Request does not require shipping", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrIdentityCollision):
		return pkg.NewDomainErrorSimple("IDENTITY_COLLISION", "Could not allocate a unique request number", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Request was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotDeletable):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Customer-sourced requests cannot be deleted", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
