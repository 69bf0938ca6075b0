package entities

import "time"

// PackageStatus is display-only logistics state; it never gates reconciliation.

type PackageStatus string

const (
	PackageStatusCreated   PackageStatus = "Created"
	PackageStatusShipped   PackageStatus = "Shipped"
	PackageStatusDelivered PackageStatus = "Delivered"
	PackageStatusCancelled PackageStatus = "Cancelled"
)

// PackageLine is the rate-bearing display copy of one packed line, derived
// from Quantities and the estimate's rates whenever Quantities changes.
type PackageLine struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// PackageTotals caches line/amount sums for listings and printing.
type PackageTotals struct {
	Lines  float64 `json:"lines"`
	Amount float64 `json:"amount"`
}

// PackageSnapshot captures customer/address fields at creation time so a
// printed package stays stable even if the estimate is later re-synced.
type PackageSnapshot struct {
	CustomerName string  `json:"customerName"`
	TxnDate      string  `json:"txnDate"`
	TotalAmount  float64 `json:"totalAmount"`
	BillTo       string  `json:"billTo,omitempty"`
	ShipTo       string  `json:"shipTo,omitempty"`
}

// SiteContact is the delivery-site contact for a shipment.
type SiteContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Package is one packing/shipment event against an estimate.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI estimate_id-index (PK: estimate_id) for per-estimate aggregation
//   - GSI realm_id-package_date-index (PK: realm_id, SK: package_date) for listings
//   - GSI realm_id-package_code-index (PK: realm_id, SK: package_code) for
//     code-uniqueness probes
//
// Quantities is the authoritative ledger entry for this shipment's
// contribution to fulfillment, keyed by canonical item key (id, or trimmed
// name for legacy lines). Lines/Totals are regenerated from Quantities and
// never summed across packages; the recompute engine only reads Quantities.
type Package struct {
	ID          string             `json:"id"`
	PackageCode string             `json:"packageCode"`
	EstimateID  string             `json:"estimateId"`
	RealmID     string             `json:"realmId"`
	Quantities  map[string]float64 `json:"quantities"`
	Lines       []PackageLine      `json:"lines"`
	Totals      PackageTotals      `json:"totals"`
	Snapshot    PackageSnapshot    `json:"snapshot"`

	PackageDate     time.Time     `json:"packageDate"`
	ShipmentDate    *time.Time    `json:"shipmentDate,omitempty"`
	DriverName      string        `json:"driverName,omitempty"`
	SiteContact     SiteContact   `json:"siteContact"`
	ShippingAddress string        `json:"shippingAddress,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Status          PackageStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
