package repository

import (
	"context"
	"fmt"
	"strconv"

	"techmend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// SequenceCounterDynamoRepository hands out the per-year request sequence.
//
// Table requirements:
//   - PK: id (string), one row per year, e.g. "maintenance_requests#2026"
//
// The increment is a single DynamoDB ADD with ReturnValues ALL_NEW, so two
// concurrent intakes can never read the same value.

type SequenceCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceCounter = (*SequenceCounterDynamoRepository)(nil)

func NewSequenceCounterDynamoRepository(ddb *dynamodb.Client) *SequenceCounterDynamoRepository {
	return &SequenceCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SequenceCounterDynamoRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fmt.Sprintf("maintenance_requests#%d", year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, fmt.Errorf("counter table returned no seq attribute")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter seq attribute is not a number")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
