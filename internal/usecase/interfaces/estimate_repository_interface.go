package interfaces

import (
	"context"

	"nurseryhub/internal/domain/entities"
)

// LineChange is one staged write against an estimate line, addressed by
// index and guarded by the line's identity so a concurrently re-synced
// estimate can never receive a misdirected update.
type LineChange struct {
	Index         int
	Key           entities.ItemKey
	Fulfilled     float64
	PrevFulfilled float64
	HealID        bool
}

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Not-found is reported as a zero-value Estimate with a nil error; use cases
// translate that into their own sentinel errors.
type IEstimateRepository interface {
	Get(ctx context.Context, realmID, estimateID string) (entities.Estimate, error)

	// Upsert writes the full document; callers are responsible for carrying
	// CreatedAt and fulfilled values over from the previous revision.
	Upsert(ctx context.Context, e entities.Estimate) (entities.Estimate, error)

	// IncrementLineFulfilled atomically adds delta to items[index].fulfilled,
	// conditioned on the line at that index still carrying key. Returns
	// matched=false when the condition fails (line moved or replaced).
	IncrementLineFulfilled(ctx context.Context, realmID, estimateID string, index int, key entities.ItemKey, delta float64) (matched bool, err error)

	// ApplyLineChanges persists only the staged fulfilled/item-id fields (and
	// optionally txn_status) in a single update, leaving every other
	// attribute untouched.
	ApplyLineChanges(ctx context.Context, realmID, estimateID string, changes []LineChange, status *entities.TxnStatus) error

	// Delete removes the estimate document. Returns found=false when no such
	// estimate exists for the tenant.
	Delete(ctx context.Context, realmID, estimateID string) (found bool, err error)
}
