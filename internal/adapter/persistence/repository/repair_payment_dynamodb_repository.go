package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "repair_payments"
	paymentsRequestNumberIndex = "request_number-index"
)

type repairPaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	RequestNumber string                 `dynamodbav:"request_number"`
	Amount        string                 `dynamodbav:"amount"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	Payload       map[string]interface{} `dynamodbav:"payload,omitempty"`
	PayloadRaw    string                 `dynamodbav:"payload_raw,omitempty"`
}

// RepairPaymentDynamoRepository persists RepairPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_number-index (PK: request_number)

type RepairPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairPaymentRepository = (*RepairPaymentDynamoRepository)(nil)

func NewRepairPaymentDynamoRepository(ddb *dynamodb.Client) *RepairPaymentDynamoRepository {
	return &RepairPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *RepairPaymentDynamoRepository) Create(ctx context.Context, p entities.RepairPayment) (entities.RepairPayment, error) {
	av, err := attributevalue.MarshalMap(toRepairPaymentItem(p))
	if err != nil {
		return entities.RepairPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RepairPayment{}, err
	}
	return p, nil
}

func (r *RepairPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairPayment{}, nil
	}

	var it repairPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairPayment{}, err
	}
	return fromRepairPaymentItem(it), nil
}

func (r *RepairPaymentDynamoRepository) ListByRequestNumber(ctx context.Context, requestNumber string) ([]entities.RepairPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequestNumberIndex),
		KeyConditionExpression: aws.String("#rn = :rn"),
		ExpressionAttributeNames: map[string]string{
			"#rn": "request_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rn": &types.AttributeValueMemberS{Value: requestNumber},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.RepairPayment, 0, len(out.Items))
	for _, item := range out.Items {
		var it repairPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromRepairPaymentItem(it))
	}
	return payments, nil
}

func toRepairPaymentItem(p entities.RepairPayment) repairPaymentItem {
	return repairPaymentItem{
		ID:            p.ID,
		RequestNumber: p.RequestNumber,
		Amount:        floatToString(p.Amount),
		Date:          p.Date.UTC().Format(time.RFC3339Nano),
		Status:        string(p.Status),
		Payload:       p.Payload,
		PayloadRaw:    string(p.PayloadRaw),
	}
}

func fromRepairPaymentItem(it repairPaymentItem) entities.RepairPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	p := entities.RepairPayment{
		ID:            it.ID,
		RequestNumber: it.RequestNumber,
		Amount:        amount,
		Date:          date,
		Status:        entities.GatewayPaymentStatus(it.Status),
		Payload:       it.Payload,
	}
	if it.PayloadRaw != "" {
		p.PayloadRaw = json.RawMessage(it.PayloadRaw)
	}
	return p
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
