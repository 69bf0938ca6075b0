package entities

import (
	"math"
	"strings"
	"time"
)

// TxnStatus represents the lifecycle of a sales estimate as reported by the
// accounting platform, advanced locally only when every capped line is fully
// packed (see the recompute use case).
//
// Domain notes:
//   - Estimates are created/updated by the QuickBooks sync job; this service
//     only ever touches items[i].fulfilled, healed item ids and txn_status.

type TxnStatus string

const (
	TxnStatusPending  TxnStatus = "Pending"
	TxnStatusAccepted TxnStatus = "Accepted"
	TxnStatusDeclined TxnStatus = "Declined"
	TxnStatusClosed   TxnStatus = "Closed"
)

// EstimateLine is one ordered line on an estimate.
//
// Fulfilled is a derived cache: the sum of all active packages' quantities for
// this line's key, clamped to Quantity when Quantity is a positive cap. It is
// only ever written by the fulfillment recompute engine or by the targeted
// atomic increment during package creation.
type EstimateLine struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Fulfilled float64 `json:"fulfilled"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}

// Remaining is the packable headroom for the line, clamped at zero.
func (l EstimateLine) Remaining() float64 {
	return math.Max(0, l.Quantity-l.Fulfilled)
}

// Key resolves the canonical lookup key for the line: item id when present,
// normalized name otherwise. Lines with neither are unkeyable and must be
// excluded from fulfillment accounting.
func (l EstimateLine) Key() (ItemKey, bool) {
	if id := strings.TrimSpace(l.ItemID); id != "" {
		return ItemKey{ID: id}, true
	}
	if name := strings.TrimSpace(l.Name); name != "" {
		return ItemKey{Name: name}, true
	}
	return ItemKey{}, false
}

// Estimate is a sales order synced from QuickBooks Online, one per
// (realm_id, estimate_id).
//
// Storage model (DynamoDB):
//   - PK: realm_id, SK: estimate_id (natural-key uniqueness by key schema)
//
// Raw keeps the original QBO payload (JSON) so the recompute engine can
// recover item ids for legacy lines that were synced without one.
type Estimate struct {
	EstimateID   string         `json:"estimateId"`
	RealmID      string         `json:"realmId"`
	CustomerName string         `json:"customerName"`
	TxnDate      string         `json:"txnDate"`
	TotalAmount  float64        `json:"totalAmount"`
	TxnStatus    TxnStatus      `json:"txnStatus"`
	Items        []EstimateLine `json:"items"`
	Raw          string         `json:"raw,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ItemKey is the canonical identity of an estimate line / inventory item as
// used in package quantity maps. Exactly one of ID or Name is set: ID for
// catalog-linked lines, Name for legacy lines that never carried an id.
type ItemKey struct {
	ID   string
	Name string
}

// String returns the single canonical map key: the id when identified, the
// trimmed name otherwise.
func (k ItemKey) String() string {
	if k.ID != "" {
		return k.ID
	}
	return strings.TrimSpace(k.Name)
}

// Identified reports whether the key references a catalog item id.
func (k ItemKey) Identified() bool { return k.ID != "" }
