package repository

import (
	"context"
	"errors"
	"log"

	"nurseryhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReconcileTxRepository commits a package deletion, the estimate's staged
// fulfilled diff and the inventory reversals as one TransactWriteItems call.
// The estimate update conditions each changed line on the fulfilled value the
// caller read, so any concurrent recompute cancels the transaction instead of
// being silently overwritten.

type ReconcileTxRepository struct {
	ddb            *dynamodb.Client
	packagesTable  string
	estimatesTable string
	itemsTable     string
}

var _ interfaces.IReconciliationTx = (*ReconcileTxRepository)(nil)

func NewReconcileTxRepository(ddb *dynamodb.Client) *ReconcileTxRepository {
	return &ReconcileTxRepository{
		ddb:            ddb,
		packagesTable:  getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
		estimatesTable: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		itemsTable:     getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ReconcileTxRepository) DeletePackageAndReconcile(ctx context.Context, in interfaces.DeleteReconcileInput) (bool, error) {
	items := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName:                aws.String(r.packagesTable),
				Key:                      packageKey(in.Package.ID),
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}

	if len(in.LineChanges) > 0 || in.Status != nil {
		expr, names, values := buildLineChangeExpression(in.LineChanges, in.Status, true)
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:                 aws.String(r.estimatesTable),
				Key:                       estimateKey(in.Package.RealmID, in.Package.EstimateID),
				UpdateExpression:          aws.String(expr),
				ConditionExpression:       aws.String(lineChangeConditions(in.LineChanges)),
				ExpressionAttributeNames:  mergeNames(names, map[string]string{"#realm_id": "realm_id"}),
				ExpressionAttributeValues: values,
			},
		})
	}

	for _, rev := range in.Reversals {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.itemsTable),
				Key:                 itemTableKey(in.Package.RealmID, rev.ItemID),
				UpdateExpression:    aws.String("ADD #q :d SET #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#item_id)"),
				ExpressionAttributeNames: map[string]string{
					"#q":          "quantity",
					"#item_id":    "item_id",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":d":   &types.AttributeValueMemberN{Value: floatToString(rev.Delta)},
					":now": &types.AttributeValueMemberS{Value: nowString()},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			log.Printf("[package][delete] transaction canceled package_id=%s reasons=%s", in.Package.ID, cancellationCodes(canceled))
			return false, nil
		}
		var conflict *types.TransactionConflictException
		if errors.As(err, &conflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func cancellationCodes(e *types.TransactionCanceledException) string {
	codes := ""
	for i, reason := range e.CancellationReasons {
		if i > 0 {
			codes += ","
		}
		codes += aws.ToString(reason.Code)
	}
	return codes
}
