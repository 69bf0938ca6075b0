package interfaces

import (
	"context"

	"nurseryhub/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for local inventory items.
//
// Not-found is reported as a zero-value Item with a nil error.
type IItemRepository interface {
	Get(ctx context.Context, realmID, itemID string) (entities.Item, error)

	// AdjustQuantity atomically adds delta to the item's on-hand quantity
	// (negative deltas decrement; stock may go negative). Returns
	// tracked=false when no such item row exists: adjustments never
	// fabricate inventory rows for items the catalog sync hasn't created.
	AdjustQuantity(ctx context.Context, realmID, itemID string, delta float64) (tracked bool, err error)
}
