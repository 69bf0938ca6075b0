package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateLineRecord struct {
	ItemID    string  `dynamodbav:"item_id"`
	Name      string  `dynamodbav:"name"`
	Quantity  float64 `dynamodbav:"quantity"`
	Fulfilled float64 `dynamodbav:"fulfilled"`
	Rate      float64 `dynamodbav:"rate"`
	Amount    float64 `dynamodbav:"amount"`
}

type estimateRecord struct {
	RealmID      string               `dynamodbav:"realm_id"`
	EstimateID   string               `dynamodbav:"estimate_id"`
	CustomerName string               `dynamodbav:"customer_name"`
	TxnDate      string               `dynamodbav:"txn_date"`
	TotalAmount  float64              `dynamodbav:"total_amount"`
	TxnStatus    string               `dynamodbav:"txn_status"`
	Items        []estimateLineRecord `dynamodbav:"items"`
	Raw          string               `dynamodbav:"raw,omitempty"`
	CreatedAt    string               `dynamodbav:"created_at"`
	UpdatedAt    string               `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: realm_id (string), SK: estimate_id (string)
//
// The composite key makes the (tenant, estimate) pair unique by schema, so
// no separate uniqueness check is needed anywhere.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Get(ctx context.Context, realmID, estimateID string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            estimateKey(realmID, estimateID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func (r *EstimateDynamoRepository) Upsert(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateRecord(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

// IncrementLineFulfilled adds delta to items[index].fulfilled in one atomic
// update, conditioned on the line at that index still carrying the given
// key. Addressing by index keeps the expression targeted; the identity
// condition protects against the items array having been re-synced (and
// possibly reordered) since the caller read it.
func (r *EstimateDynamoRepository) IncrementLineFulfilled(ctx context.Context, realmID, estimateID string, index int, key entities.ItemKey, delta float64) (bool, error) {
	names := map[string]string{
		"#items":      "items",
		"#f":          "fulfilled",
		"#updated_at": "updated_at",
	}
	names["#lk"] = "item_id"
	if !key.Identified() {
		names["#lk"] = "name"
	}
	cond := fmt.Sprintf("#items[%d].#lk = :key", index)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      estimateKey(realmID, estimateID),
		UpdateExpression:         aws.String(fmt.Sprintf("SET #items[%d].#f = #items[%d].#f + :d, #updated_at = :now", index, index)),
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d":   &types.AttributeValueMemberN{Value: floatToString(delta)},
			":key": &types.AttributeValueMemberS{Value: key.String()},
			":now": &types.AttributeValueMemberS{Value: nowString()},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ApplyLineChanges sets only the staged fulfilled/item_id fields (plus an
// optional txn_status) in a single update so concurrent writes to unrelated
// attributes are never clobbered.
func (r *EstimateDynamoRepository) ApplyLineChanges(ctx context.Context, realmID, estimateID string, changes []interfaces.LineChange, status *entities.TxnStatus) error {
	if len(changes) == 0 && status == nil {
		return nil
	}

	expr, names, values := buildLineChangeExpression(changes, status, false)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       estimateKey(realmID, estimateID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#realm_id)"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#realm_id": "realm_id"}),
		ExpressionAttributeValues: values,
	})
	return err
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, realmID, estimateID string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          estimateKey(realmID, estimateID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func estimateKey(realmID, estimateID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"realm_id":    &types.AttributeValueMemberS{Value: realmID},
		"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
	}
}

// buildLineChangeExpression renders the targeted SET expression shared by
// the plain update path and the delete transaction. With prevConditions set
// it also returns a condition expression pinning each changed line to the
// fulfilled value the caller read (optimistic concurrency for the delete
// transaction); the condition string is values[condExprKey].
func buildLineChangeExpression(changes []interfaces.LineChange, status *entities.TxnStatus, prevConditions bool) (string, map[string]string, map[string]types.AttributeValue) {
	names := map[string]string{
		"#items":      "items",
		"#f":          "fulfilled",
		"#item_id":    "item_id",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":now": &types.AttributeValueMemberS{Value: nowString()},
	}

	parts := []string{"#updated_at = :now"}
	for n, ch := range changes {
		parts = append(parts, fmt.Sprintf("#items[%d].#f = :f%d", ch.Index, n))
		values[fmt.Sprintf(":f%d", n)] = &types.AttributeValueMemberN{Value: floatToString(ch.Fulfilled)}
		if ch.HealID {
			parts = append(parts, fmt.Sprintf("#items[%d].#item_id = :k%d", ch.Index, n))
			values[fmt.Sprintf(":k%d", n)] = &types.AttributeValueMemberS{Value: ch.Key.String()}
		}
		if prevConditions {
			values[fmt.Sprintf(":p%d", n)] = &types.AttributeValueMemberN{Value: floatToString(ch.PrevFulfilled)}
		}
	}
	if status != nil {
		names["#txn_status"] = "txn_status"
		parts = append(parts, "#txn_status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
	}

	return "SET " + strings.Join(parts, ", "), names, values
}

// lineChangeConditions renders the optimistic-concurrency condition matching
// buildLineChangeExpression's :pN placeholders.
func lineChangeConditions(changes []interfaces.LineChange) string {
	conds := []string{"attribute_exists(#realm_id)"}
	for n, ch := range changes {
		conds = append(conds, fmt.Sprintf("#items[%d].#f = :p%d", ch.Index, n))
	}
	return strings.Join(conds, " AND ")
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	items := make([]estimateLineRecord, 0, len(e.Items))
	for _, l := range e.Items {
		items = append(items, estimateLineRecord(l))
	}
	return estimateRecord{
		RealmID:      e.RealmID,
		EstimateID:   e.EstimateID,
		CustomerName: e.CustomerName,
		TxnDate:      e.TxnDate,
		TotalAmount:  e.TotalAmount,
		TxnStatus:    string(e.TxnStatus),
		Items:        items,
		Raw:          e.Raw,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateRecord(rec estimateRecord) entities.Estimate {
	items := make([]entities.EstimateLine, 0, len(rec.Items))
	for _, l := range rec.Items {
		items = append(items, entities.EstimateLine(l))
	}
	return entities.Estimate{
		RealmID:      rec.RealmID,
		EstimateID:   rec.EstimateID,
		CustomerName: rec.CustomerName,
		TxnDate:      rec.TxnDate,
		TotalAmount:  rec.TotalAmount,
		TxnStatus:    entities.TxnStatus(rec.TxnStatus),
		Items:        items,
		Raw:          rec.Raw,
		CreatedAt:    parseTime(rec.CreatedAt),
		UpdatedAt:    parseTime(rec.UpdatedAt),
	}
}
