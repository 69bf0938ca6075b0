package repository

import (
	"context"
	"errors"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultItemsTableName = "items"

type itemRecord struct {
	RealmID   string  `dynamodbav:"realm_id"`
	ItemID    string  `dynamodbav:"item_id"`
	Name      string  `dynamodbav:"name"`
	SKU       string  `dynamodbav:"sku,omitempty"`
	Quantity  float64 `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Active    bool    `dynamodbav:"active"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// ItemDynamoRepository tracks on-hand inventory per (realm_id, item_id).

type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Get(ctx context.Context, realmID, itemID string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemTableKey(realmID, itemID),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Item{}, err
	}
	return entities.Item{
		RealmID:   rec.RealmID,
		ItemID:    rec.ItemID,
		Name:      rec.Name,
		SKU:       rec.SKU,
		Quantity:  rec.Quantity,
		UnitPrice: rec.UnitPrice,
		Active:    rec.Active,
		UpdatedAt: parseTime(rec.UpdatedAt),
	}, nil
}

// AdjustQuantity atomically adds delta to the item's on-hand quantity. The
// attribute_exists condition stops DynamoDB from materializing a phantom row
// for an untracked item; that case returns tracked=false with no error so the
// caller can log and move on.
func (r *ItemDynamoRepository) AdjustQuantity(ctx context.Context, realmID, itemID string, delta float64) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 itemTableKey(realmID, itemID),
		UpdateExpression:    aws.String("ADD #q :d SET #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#item_id)"),
		ExpressionAttributeNames: map[string]string{
			"#q":          "quantity",
			"#item_id":    "item_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d":   &types.AttributeValueMemberN{Value: floatToString(delta)},
			":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
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

func itemTableKey(realmID, itemID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"realm_id": &types.AttributeValueMemberS{Value: realmID},
		"item_id":  &types.AttributeValueMemberS{Value: itemID},
	}
}
