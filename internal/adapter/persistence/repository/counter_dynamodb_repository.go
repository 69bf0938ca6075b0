package repository

import (
	"context"
	"fmt"
	"strconv"

	"nurseryhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository hands out monotonically increasing sequence values
// per (realm_id, name, year). A single ADD update allocates the value and
// creates the row on first use, so concurrent callers never see the same
// sequence twice.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, realmID, name string, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"realm_id":    &types.AttributeValueMemberS{Value: realmID},
			"counter_key": &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%d", name, year)},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
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
		return 0, fmt.Errorf("counter %s#%d: no seq attribute returned", name, year)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s#%d: seq is not numeric", name, year)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
