package entities

import "time"

// Item is the local inventory record for a QuickBooks catalog item, one per
// (realm_id, item_id).
//
// Storage model (DynamoDB):
//   - PK: realm_id, SK: item_id
//
// Quantity is on-hand stock and may go negative; packaging decrements it and
// package deletion re-increments it, always via atomic ADD expressions. Rows
// are only ever created by the catalog sync job: a stock adjustment against a
// missing row fails its condition check instead of fabricating the row.
type Item struct {
	ItemID    string    `json:"itemId"`
	RealmID   string    `json:"realmId"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku,omitempty"`
	Quantity  float64   `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}
