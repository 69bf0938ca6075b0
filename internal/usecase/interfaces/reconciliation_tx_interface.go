package interfaces

import (
	"context"

	"nurseryhub/internal/domain/entities"
)

// InventoryReversal re-increments one item's stock by the quantity a deleted
// package had packed for it.
type InventoryReversal struct {
	ItemID string
	Delta  float64
}

// DeleteReconcileInput stages a package hard-delete together with the
// estimate/inventory writes derived from post-delete state.
//
// LineChanges carry PrevFulfilled so the transaction aborts if the estimate
// moved between the caller's read and the commit; the caller re-reads and
// retries a bounded number of times.
type DeleteReconcileInput struct {
	Package     entities.Package
	LineChanges []LineChange
	Status      *entities.TxnStatus
	Reversals   []InventoryReversal
}

// IReconciliationTx commits the delete-path writes as one transaction so a
// concurrent reader can never observe the package gone while fulfilled still
// reflects its contribution, or the reverse.
type IReconciliationTx interface {
	// DeletePackageAndReconcile returns committed=false when the storage
	// layer cancels the transaction on a write conflict (retryable).
	DeletePackageAndReconcile(ctx context.Context, in DeleteReconcileInput) (committed bool, err error)
}
