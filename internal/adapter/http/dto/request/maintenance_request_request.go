package request

import (
	"strings"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase"
)

type CustomerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	NationalID string `json:"national_id"`
}

type UnlockRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type DeviceRequest struct {
	Brand         string         `json:"brand"`
	Model         string         `json:"model"`
	Color         string         `json:"color"`
	Storage       string         `json:"storage"`
	SerialNumber  string         `json:"serial_number"`
	UnderWarranty bool           `json:"under_warranty"`
	Unlock        *UnlockRequest `json:"unlock"`
}

type IssueImageRequest struct {
	URL   string `json:"url"`
	Angle string `json:"angle"`
}

type IssueRequest struct {
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Priority    string              `json:"priority"`
	Images      []IssueImageRequest `json:"images"`
	Symptoms    []string            `json:"symptoms"`
}

type ShippingRequest struct {
	Required        bool    `json:"required"`
	Provider        string  `json:"provider"`
	Cost            float64 `json:"cost"`
	PickupAddress   string  `json:"pickup_address"`
	DeliveryAddress string  `json:"delivery_address"`
}

// CreateMaintenanceRequestRequest is the intake payload. Field-group
// validation (customer, device, issue, image count) is owned by the use case
// so clients get the group-level reason back.
type CreateMaintenanceRequestRequest struct {
	Source   string          `json:"source"`
	Customer CustomerRequest `json:"customer"`
	Device   DeviceRequest   `json:"device"`
	Issue    IssueRequest    `json:"issue"`
	Shipping ShippingRequest `json:"shipping"`
}

func (r CreateMaintenanceRequestRequest) ToInput() usecase.CreateRequestInput {
	input := usecase.CreateRequestInput{
		Source: entities.RequestSource(strings.TrimSpace(r.Source)),
		Customer: entities.CustomerSnapshot{
			Name:       strings.TrimSpace(r.Customer.Name),
			Phone:      strings.TrimSpace(r.Customer.Phone),
			Email:      strings.TrimSpace(r.Customer.Email),
			Address:    strings.TrimSpace(r.Customer.Address),
			NationalID: strings.TrimSpace(r.Customer.NationalID),
		},
		Device: entities.DeviceSnapshot{
			Brand:         strings.TrimSpace(r.Device.Brand),
			Model:         strings.TrimSpace(r.Device.Model),
			Color:         strings.TrimSpace(r.Device.Color),
			Storage:       strings.TrimSpace(r.Device.Storage),
			SerialNumber:  strings.TrimSpace(r.Device.SerialNumber),
			UnderWarranty: r.Device.UnderWarranty,
		},
		Issue: usecase.CreateIssueInput{
			Category:    strings.TrimSpace(r.Issue.Category),
			Description: strings.TrimSpace(r.Issue.Description),
			Priority:    entities.Priority(strings.TrimSpace(r.Issue.Priority)),
			Symptoms:    r.Issue.Symptoms,
		},
		Shipping: usecase.CreateShippingInput{
			Required:        r.Shipping.Required,
			ProviderHint:    r.Shipping.Provider,
			Cost:            r.Shipping.Cost,
			PickupAddress:   r.Shipping.PickupAddress,
			DeliveryAddress: r.Shipping.DeliveryAddress,
		},
	}
	if r.Device.Unlock != nil {
		input.Device.Unlock = &entities.UnlockCredential{
			Kind:  strings.TrimSpace(r.Device.Unlock.Kind),
			Value: r.Device.Unlock.Value,
		}
	}
	for _, img := range r.Issue.Images {
		input.Issue.Images = append(input.Issue.Images, usecase.IssueImageInput{
			URL:   strings.TrimSpace(img.URL),
			Angle: strings.TrimSpace(img.Angle),
		})
	}
	return input
}

type RequiredPartRequest struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

type DiagnosisRequest struct {
	RootCause      string                `json:"root_cause"`
	RecommendedFix string                `json:"recommended_fix"`
	RequiredParts  []RequiredPartRequest `json:"required_parts"`
	Repairable     bool                  `json:"repairable"`
	EstimatedHours float64               `json:"estimated_hours"`
	LaborCost      float64               `json:"labor_cost"`
	Note           string                `json:"note"`
}

func (r DiagnosisRequest) ToInput() usecase.DiagnosisInput {
	input := usecase.DiagnosisInput{
		RootCause:      r.RootCause,
		RecommendedFix: r.RecommendedFix,
		Repairable:     r.Repairable,
		EstimatedHours: r.EstimatedHours,
		LaborCost:      r.LaborCost,
		Note:           r.Note,
	}
	for _, p := range r.RequiredParts {
		input.RequiredParts = append(input.RequiredParts, entities.RequiredPart{
			Name:      strings.TrimSpace(p.Name),
			Price:     p.Price,
			Available: p.Available,
		})
	}
	return input
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type ApprovalRequest struct {
	Decision      string `json:"decision" binding:"required"`
	CustomerNotes string `json:"customer_notes"`
	Channel       string `json:"channel"`
	TargetStatus  string `json:"target_status" binding:"required"`
	Note          string `json:"note"`
}

func (r ApprovalRequest) ToInput() usecase.ApprovalInput {
	return usecase.ApprovalInput{
		Decision:      entities.ApprovalDecision(strings.TrimSpace(r.Decision)),
		CustomerNotes: r.CustomerNotes,
		Channel:       r.Channel,
		TargetStatus:  entities.RequestStatus(strings.TrimSpace(r.TargetStatus)),
		Note:          r.Note,
	}
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateShippingRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	Notes          string `json:"notes"`
}

func (r UpdateShippingRequest) ToInput() usecase.ShippingUpdateInput {
	return usecase.ShippingUpdateInput{
		Status:         entities.ShippingStatus(strings.TrimSpace(r.Status)),
		TrackingNumber: r.TrackingNumber,
		Notes:          r.Notes,
	}
}

type AssignTechnicianRequest struct {
	ID             string `json:"id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
}
