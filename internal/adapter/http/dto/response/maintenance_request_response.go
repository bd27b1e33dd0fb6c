package response

import (
	"time"

	"techmend/internal/domain/entities"
)

type StatusHistoryEntryResponse struct {
	PreviousStatus string    `json:"previous_status"`
	Timestamp      time.Time `json:"timestamp"`
	Note           string    `json:"note"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
}

type MaintenanceRequestResponse struct {
	Number           string                          `json:"number"`
	Source           string                          `json:"source"`
	Customer         entities.CustomerSnapshot       `json:"customer"`
	Device           entities.DeviceSnapshot         `json:"device"`
	Issue            entities.IssueRecord            `json:"issue"`
	Diagnosis        *entities.DiagnosisRecord       `json:"diagnosis,omitempty"`
	Status           string                          `json:"status"`
	ResumesTo        string                          `json:"resumes_to,omitempty"`
	Cost             entities.CostBreakdown          `json:"cost"`
	CustomerApproval entities.CustomerApproval       `json:"customer_approval"`
	Shipping         entities.ShippingRecord         `json:"shipping"`
	Technician       *entities.TechnicianAssignment  `json:"technician,omitempty"`
	Timeline         entities.Timeline               `json:"timeline"`
	StatusHistory    []StatusHistoryEntryResponse    `json:"status_history"`
	CreatedAt        time.Time                       `json:"created_at"`
	UpdatedAt        time.Time                       `json:"updated_at"`
}

func FromMaintenanceRequest(r entities.MaintenanceRequest) MaintenanceRequestResponse {
	resp := MaintenanceRequestResponse{
		Number:           r.Number,
		Source:           string(r.Source),
		Customer:         r.Customer,
		Device:           r.Device,
		Issue:            r.Issue,
		Diagnosis:        r.Diagnosis,
		Status:           string(r.Status.Current),
		ResumesTo:        string(r.Status.ResumesTo),
		Cost:             r.Cost,
		CustomerApproval: r.CustomerApproval,
		Shipping:         r.Shipping,
		Technician:       r.Technician,
		Timeline:         r.Timeline,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	resp.StatusHistory = make([]StatusHistoryEntryResponse, 0, len(r.StatusHistory))
	for _, entry := range r.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, StatusHistoryEntryResponse{
			PreviousStatus: string(entry.PreviousStatus),
			Timestamp:      entry.Timestamp,
			Note:           entry.Note,
			ActorID:        entry.Actor.ID,
			ActorRole:      string(entry.Actor.Role),
		})
	}
	return resp
}

type MaintenanceRequestListResponse struct {
	Items      []MaintenanceRequestResponse `json:"items"`
	NextCursor string                       `json:"next_cursor,omitempty"`
}

func FromMaintenanceRequestList(items []entities.MaintenanceRequest, nextCursor string) MaintenanceRequestListResponse {
	resp := MaintenanceRequestListResponse{
		Items:      make([]MaintenanceRequestResponse, 0, len(items)),
		NextCursor: nextCursor,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, FromMaintenanceRequest(item))
	}
	return resp
}

type RepairPaymentResponse struct {
	ID            string    `json:"id"`
	RequestNumber string    `json:"request_number"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

func FromRepairPayment(p entities.RepairPayment) RepairPaymentResponse {
	return RepairPaymentResponse{
		ID:            p.ID,
		RequestNumber: p.RequestNumber,
		Amount:        p.Amount,
		Date:          p.Date,
		Status:        string(p.Status),
	}
}

func FromRepairPayments(payments []entities.RepairPayment) []RepairPaymentResponse {
	out := make([]RepairPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromRepairPayment(p))
	}
	return out
}

type UploadedMediaResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type UploadMediaResponse struct {
	Images []UploadedMediaResponse `json:"images"`
}
