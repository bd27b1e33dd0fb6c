package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "maintenance_requests"
	defaultListLimit         = 20
	maxListLimit             = 100
)

type actorItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name,omitempty"`
	Role string `dynamodbav:"role"`
}

type historyEntryItem struct {
	PreviousStatus string    `dynamodbav:"previous_status"`
	Timestamp      string    `dynamodbav:"timestamp"`
	Note           string    `dynamodbav:"note"`
	Actor          actorItem `dynamodbav:"actor"`
}

type unlockItem struct {
	Kind  string `dynamodbav:"kind"`
	Value string `dynamodbav:"value"`
}

type issueImageItem struct {
	ID    string `dynamodbav:"id"`
	URL   string `dynamodbav:"url"`
	Angle string `dynamodbav:"angle,omitempty"`
}

type requiredPartItem struct {
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	Available bool    `dynamodbav:"available"`
}

type diagnosisItem struct {
	RootCause      string             `dynamodbav:"root_cause"`
	RecommendedFix string             `dynamodbav:"recommended_fix"`
	RequiredParts  []requiredPartItem `dynamodbav:"required_parts,omitempty"`
	Repairable     bool               `dynamodbav:"repairable"`
	EstimatedHours float64            `dynamodbav:"estimated_hours"`
}

type costItem struct {
	DiagnosticFee  float64 `dynamodbav:"diagnostic_fee"`
	PartsCost      float64 `dynamodbav:"parts_cost"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	PriorityFee    float64 `dynamodbav:"priority_fee"`
	ShippingFee    float64 `dynamodbav:"shipping_fee"`
	TotalEstimated float64 `dynamodbav:"total_estimated"`
	TotalFinal     float64 `dynamodbav:"total_final"`
	PaymentStatus  string  `dynamodbav:"payment_status"`
}

type approvalItem struct {
	Status        string `dynamodbav:"status"`
	Decision      string `dynamodbav:"decision,omitempty"`
	CustomerNotes string `dynamodbav:"customer_notes,omitempty"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	Channel       string `dynamodbav:"channel,omitempty"`
}

type shippingItem struct {
	IsRequired      bool    `dynamodbav:"is_required"`
	Provider        string  `dynamodbav:"provider,omitempty"`
	Cost            float64 `dynamodbav:"cost"`
	TrackingNumber  string  `dynamodbav:"tracking_number,omitempty"`
	Status          string  `dynamodbav:"status"`
	PickupAddress   string  `dynamodbav:"pickup_address,omitempty"`
	DeliveryAddress string  `dynamodbav:"delivery_address,omitempty"`
	Notes           string  `dynamodbav:"notes,omitempty"`
}

type technicianItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Specialization string `dynamodbav:"specialization,omitempty"`
}

type timelineItem struct {
	ReceivedAt  string `dynamodbav:"received_at,omitempty"`
	DiagnosedAt string `dynamodbav:"diagnosed_at,omitempty"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
	StartedAt   string `dynamodbav:"started_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	DeliveredAt string `dynamodbav:"delivered_at,omitempty"`
}

type customerItem struct {
	Name       string `dynamodbav:"name"`
	Phone      string `dynamodbav:"phone"`
	Email      string `dynamodbav:"email,omitempty"`
	Address    string `dynamodbav:"address,omitempty"`
	NationalID string `dynamodbav:"national_id,omitempty"`
}

type deviceItem struct {
	Brand         string      `dynamodbav:"brand"`
	Model         string      `dynamodbav:"model"`
	Color         string      `dynamodbav:"color,omitempty"`
	Storage       string      `dynamodbav:"storage,omitempty"`
	SerialNumber  string      `dynamodbav:"serial_number"`
	UnderWarranty bool        `dynamodbav:"under_warranty"`
	Unlock        *unlockItem `dynamodbav:"unlock,omitempty"`
}

type issueItem struct {
	Category    string           `dynamodbav:"category"`
	Description string           `dynamodbav:"description"`
	Priority    string           `dynamodbav:"priority"`
	Images      []issueImageItem `dynamodbav:"images"`
	Symptoms    []string         `dynamodbav:"symptoms,omitempty"`
}

type requestItem struct {
	Number        string             `dynamodbav:"number"`
	Source        string             `dynamodbav:"source"`
	Customer      customerItem       `dynamodbav:"customer"`
	Device        deviceItem         `dynamodbav:"device"`
	Issue         issueItem          `dynamodbav:"issue"`
	Diagnosis     *diagnosisItem     `dynamodbav:"diagnosis,omitempty"`
	Status        string             `dynamodbav:"status"`
	ResumesTo     string             `dynamodbav:"resumes_to,omitempty"`
	Cost          costItem           `dynamodbav:"cost"`
	Approval      approvalItem       `dynamodbav:"customer_approval"`
	Shipping      shippingItem       `dynamodbav:"shipping"`
	Technician    *technicianItem    `dynamodbav:"technician,omitempty"`
	Timeline      timelineItem       `dynamodbav:"timeline"`
	StatusHistory []historyEntryItem `dynamodbav:"status_history"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
	Version       int64              `dynamodbav:"version"`
}

// MaintenanceRequestDynamoRepository persists the request aggregate in
// DynamoDB.
//
// Table requirements:
//   - PK: number (string)
//
// Writes are guarded: Create requires the number to be free (identity
// collisions surface as ErrRequestNumberTaken) and Save requires the stored
// version to match the one the aggregate was read at (losing writers get
// ErrStaleAggregate). The aggregate is the unit of contention; nothing here
// ever merges partial records.

type MaintenanceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRequestRepository = (*MaintenanceRequestDynamoRepository)(nil)

func NewMaintenanceRequestDynamoRepository(ddb *dynamodb.Client) *MaintenanceRequestDynamoRepository {
	return &MaintenanceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *MaintenanceRequestDynamoRepository) Create(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#number)"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceRequest{}, interfaces.ErrRequestNumberTaken
		}
		return entities.MaintenanceRequest{}, err
	}
	return req, nil
}

func (r *MaintenanceRequestDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.MaintenanceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *MaintenanceRequestDynamoRepository) List(ctx context.Context, filter interfaces.ListFilter) ([]entities.MaintenanceRequest, string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(limit),
	}

	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Priority != "" {
		exprs = append(exprs, "issue.priority = :priority")
		values[":priority"] = &types.AttributeValueMemberS{Value: string(filter.Priority)}
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		exprs = append(exprs, "(contains(#number, :q) OR contains(customer.#cname, :q) OR contains(customer.phone, :q))")
		names["#number"] = "number"
		names["#cname"] = "name"
		values[":q"] = &types.AttributeValueMemberS{Value: q}
	}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeValues = values
		if len(names) > 0 {
			input.ExpressionAttributeNames = names
		}
	}
	if filter.Cursor != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: filter.Cursor},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}

	requests := make([]entities.MaintenanceRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, "", err
		}
		requests = append(requests, fromRequestItem(it))
	}

	nextCursor := ""
	if key, ok := out.LastEvaluatedKey["number"]; ok {
		if s, ok := key.(*types.AttributeValueMemberS); ok {
			nextCursor = s.Value
		}
	}
	return requests, nextCursor, nil
}

func (r *MaintenanceRequestDynamoRepository) Save(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	expectedVersion := req.Version
	req.Version++

	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#number) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#number":  "number",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.MaintenanceRequest{}, interfaces.ErrStaleAggregate
		}
		return entities.MaintenanceRequest{}, err
	}
	return req, nil
}

func (r *MaintenanceRequestDynamoRepository) Delete(ctx context.Context, number string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"number": &types.AttributeValueMemberS{Value: number},
		},
	})
	return err
}

func toRequestItem(req entities.MaintenanceRequest) requestItem {
	it := requestItem{
		Number: req.Number,
		Source: string(req.Source),
		Customer: customerItem{
			Name:       req.Customer.Name,
			Phone:      req.Customer.Phone,
			Email:      req.Customer.Email,
			Address:    req.Customer.Address,
			NationalID: req.Customer.NationalID,
		},
		Device: deviceItem{
			Brand:         req.Device.Brand,
			Model:         req.Device.Model,
			Color:         req.Device.Color,
			Storage:       req.Device.Storage,
			SerialNumber:  req.Device.SerialNumber,
			UnderWarranty: req.Device.UnderWarranty,
		},
		Issue: issueItem{
			Category:    req.Issue.Category,
			Description: req.Issue.Description,
			Priority:    string(req.Issue.Priority),
			Symptoms:    req.Issue.Symptoms,
		},
		Status:    string(req.Status.Current),
		ResumesTo: string(req.Status.ResumesTo),
		Cost: costItem{
			DiagnosticFee:  req.Cost.DiagnosticFee,
			PartsCost:      req.Cost.PartsCost,
			LaborCost:      req.Cost.LaborCost,
			PriorityFee:    req.Cost.PriorityFee,
			ShippingFee:    req.Cost.ShippingFee,
			TotalEstimated: req.Cost.TotalEstimated,
			TotalFinal:     req.Cost.TotalFinal,
			PaymentStatus:  string(req.Cost.PaymentStatus),
		},
		Approval: approvalItem{
			Status:        string(req.CustomerApproval.Status),
			Decision:      string(req.CustomerApproval.Decision),
			CustomerNotes: req.CustomerApproval.CustomerNotes,
			DecidedAt:     formatTimePtr(req.CustomerApproval.DecidedAt),
			Channel:       req.CustomerApproval.Channel,
		},
		Shipping: shippingItem{
			IsRequired:      req.Shipping.IsRequired,
			Provider:        req.Shipping.Provider,
			Cost:            req.Shipping.Cost,
			TrackingNumber:  req.Shipping.TrackingNumber,
			Status:          string(req.Shipping.Status),
			PickupAddress:   req.Shipping.PickupAddress,
			DeliveryAddress: req.Shipping.DeliveryAddress,
			Notes:           req.Shipping.Notes,
		},
		Timeline: timelineItem{
			ReceivedAt:  formatTimePtr(req.Timeline.ReceivedAt),
			DiagnosedAt: formatTimePtr(req.Timeline.DiagnosedAt),
			ApprovedAt:  formatTimePtr(req.Timeline.ApprovedAt),
			StartedAt:   formatTimePtr(req.Timeline.StartedAt),
			CompletedAt: formatTimePtr(req.Timeline.CompletedAt),
			DeliveredAt: formatTimePtr(req.Timeline.DeliveredAt),
		},
		CreatedAt: formatTime(req.CreatedAt),
		UpdatedAt: formatTime(req.UpdatedAt),
		Version:   req.Version,
	}

	if req.Device.Unlock != nil {
		it.Device.Unlock = &unlockItem{Kind: req.Device.Unlock.Kind, Value: req.Device.Unlock.Value}
	}
	it.Issue.Images = make([]issueImageItem, 0, len(req.Issue.Images))
	for _, img := range req.Issue.Images {
		it.Issue.Images = append(it.Issue.Images, issueImageItem{ID: img.ID, URL: img.URL, Angle: img.Angle})
	}
	if req.Diagnosis != nil {
		d := &diagnosisItem{
			RootCause:      req.Diagnosis.RootCause,
			RecommendedFix: req.Diagnosis.RecommendedFix,
			Repairable:     req.Diagnosis.Repairable,
			EstimatedHours: req.Diagnosis.EstimatedHours,
		}
		for _, p := range req.Diagnosis.RequiredParts {
			d.RequiredParts = append(d.RequiredParts, requiredPartItem{Name: p.Name, Price: p.Price, Available: p.Available})
		}
		it.Diagnosis = d
	}
	if req.Technician != nil {
		it.Technician = &technicianItem{
			ID:             req.Technician.ID,
			Name:           req.Technician.Name,
			Specialization: req.Technician.Specialization,
		}
	}
	it.StatusHistory = make([]historyEntryItem, 0, len(req.StatusHistory))
	for _, entry := range req.StatusHistory {
		it.StatusHistory = append(it.StatusHistory, historyEntryItem{
			PreviousStatus: string(entry.PreviousStatus),
			Timestamp:      formatTime(entry.Timestamp),
			Note:           entry.Note,
			Actor: actorItem{
				ID:   entry.Actor.ID,
				Name: entry.Actor.Name,
				Role: string(entry.Actor.Role),
			},
		})
	}
	return it
}

func fromRequestItem(it requestItem) entities.MaintenanceRequest {
	req := entities.MaintenanceRequest{
		Number: it.Number,
		Source: entities.RequestSource(it.Source),
		Customer: entities.CustomerSnapshot{
			Name:       it.Customer.Name,
			Phone:      it.Customer.Phone,
			Email:      it.Customer.Email,
			Address:    it.Customer.Address,
			NationalID: it.Customer.NationalID,
		},
		Device: entities.DeviceSnapshot{
			Brand:         it.Device.Brand,
			Model:         it.Device.Model,
			Color:         it.Device.Color,
			Storage:       it.Device.Storage,
			SerialNumber:  it.Device.SerialNumber,
			UnderWarranty: it.Device.UnderWarranty,
		},
		Issue: entities.IssueRecord{
			Category:    it.Issue.Category,
			Description: it.Issue.Description,
			Priority:    entities.Priority(it.Issue.Priority),
			Symptoms:    it.Issue.Symptoms,
		},
		Status: entities.StatusRecord{
			Current:   entities.RequestStatus(it.Status),
			ResumesTo: entities.RequestStatus(it.ResumesTo),
		},
		Cost: entities.CostBreakdown{
			DiagnosticFee:  it.Cost.DiagnosticFee,
			PartsCost:      it.Cost.PartsCost,
			LaborCost:      it.Cost.LaborCost,
			PriorityFee:    it.Cost.PriorityFee,
			ShippingFee:    it.Cost.ShippingFee,
			TotalEstimated: it.Cost.TotalEstimated,
			TotalFinal:     it.Cost.TotalFinal,
			PaymentStatus:  entities.PaymentStatus(it.Cost.PaymentStatus),
		},
		CustomerApproval: entities.CustomerApproval{
			Status:        entities.ApprovalStatus(it.Approval.Status),
			Decision:      entities.ApprovalDecision(it.Approval.Decision),
			CustomerNotes: it.Approval.CustomerNotes,
			DecidedAt:     parseTimePtr(it.Approval.DecidedAt),
			Channel:       it.Approval.Channel,
		},
		Shipping: entities.ShippingRecord{
			IsRequired:      it.Shipping.IsRequired,
			Provider:        it.Shipping.Provider,
			Cost:            it.Shipping.Cost,
			TrackingNumber:  it.Shipping.TrackingNumber,
			Status:          entities.ShippingStatus(it.Shipping.Status),
			PickupAddress:   it.Shipping.PickupAddress,
			DeliveryAddress: it.Shipping.DeliveryAddress,
			Notes:           it.Shipping.Notes,
		},
		Timeline: entities.Timeline{
			ReceivedAt:  parseTimePtr(it.Timeline.ReceivedAt),
			DiagnosedAt: parseTimePtr(it.Timeline.DiagnosedAt),
			ApprovedAt:  parseTimePtr(it.Timeline.ApprovedAt),
			StartedAt:   parseTimePtr(it.Timeline.StartedAt),
			CompletedAt: parseTimePtr(it.Timeline.CompletedAt),
			DeliveredAt: parseTimePtr(it.Timeline.DeliveredAt),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		Version:   it.Version,
	}

	if it.Device.Unlock != nil {
		req.Device.Unlock = &entities.UnlockCredential{Kind: it.Device.Unlock.Kind, Value: it.Device.Unlock.Value}
	}
	req.Issue.Images = make([]entities.IssueImage, 0, len(it.Issue.Images))
	for _, img := range it.Issue.Images {
		req.Issue.Images = append(req.Issue.Images, entities.IssueImage{ID: img.ID, URL: img.URL, Angle: img.Angle})
	}
	if it.Diagnosis != nil {
		d := &entities.DiagnosisRecord{
			RootCause:      it.Diagnosis.RootCause,
			RecommendedFix: it.Diagnosis.RecommendedFix,
			Repairable:     it.Diagnosis.Repairable,
			EstimatedHours: it.Diagnosis.EstimatedHours,
		}
		for _, p := range it.Diagnosis.RequiredParts {
			d.RequiredParts = append(d.RequiredParts, entities.RequiredPart{Name: p.Name, Price: p.Price, Available: p.Available})
		}
		req.Diagnosis = d
	}
	if it.Technician != nil {
		req.Technician = &entities.TechnicianAssignment{
			ID:             it.Technician.ID,
			Name:           it.Technician.Name,
			Specialization: it.Technician.Specialization,
		}
	}
	req.StatusHistory = make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory))
	for _, entry := range it.StatusHistory {
		req.StatusHistory = append(req.StatusHistory, entities.StatusHistoryEntry{
			PreviousStatus: entities.RequestStatus(entry.PreviousStatus),
			Timestamp:      parseTime(entry.Timestamp),
			Note:           entry.Note,
			Actor: entities.Actor{
				ID:   entry.Actor.ID,
				Name: entry.Actor.Name,
				Role: entities.ActorRole(entry.Actor.Role),
			},
		})
	}
	return req
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
