package interfaces

import (
	"context"
	"encoding/json"
)

// QBOAuth carries per-request credentials for the accounting platform.
// Token exchange/refresh is fully external; nothing here is ever stored in
// process-wide state.
type QBOAuth struct {
	AccessToken string
	RealmID     string
}

type QBORef struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type QBOSalesItemLineDetail struct {
	ItemRef   QBORef  `json:"ItemRef"`
	Qty       float64 `json:"Qty"`
	UnitPrice float64 `json:"UnitPrice"`
}

type QBOLine struct {
	DetailType          string                  `json:"DetailType"`
	Amount              float64                 `json:"Amount"`
	Description         string                  `json:"Description"`
	SalesItemLineDetail *QBOSalesItemLineDetail `json:"SalesItemLineDetail"`
}

type QBOAddress struct {
	Line1                  string `json:"Line1"`
	Line2                  string `json:"Line2"`
	City                   string `json:"City"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode"`
	PostalCode             string `json:"PostalCode"`
}

// QBOEstimate is the subset of the QuickBooks Estimate payload this service
// consumes. Raw preserves the full upstream document for snapshot storage
// and later item-id recovery.
type QBOEstimate struct {
	ID          string      `json:"Id"`
	DocNumber   string      `json:"DocNumber"`
	CustomerRef QBORef      `json:"CustomerRef"`
	TxnDate     string      `json:"TxnDate"`
	TotalAmt    float64     `json:"TotalAmt"`
	TxnStatus   string      `json:"TxnStatus"`
	BillAddr    *QBOAddress `json:"BillAddr"`
	ShipAddr    *QBOAddress `json:"ShipAddr"`
	Line        []QBOLine   `json:"Line"`

	Raw json.RawMessage `json:"-"`
}

// QBOInvoice mirrors the invoice subset used when turning packages into
// invoices on the accounting platform.
type QBOInvoice struct {
	ID          string    `json:"Id"`
	CustomerRef QBORef    `json:"CustomerRef"`
	TxnDate     string    `json:"TxnDate"`
	TotalAmt    float64   `json:"TotalAmt"`
	Line        []QBOLine `json:"Line"`

	Raw json.RawMessage `json:"-"`
}

// IAccountingClient is the QuickBooks Online boundary. Implementations must
// bound every call with a timeout and perform no local writes.
type IAccountingClient interface {
	FetchEstimate(ctx context.Context, auth QBOAuth, estimateID string) (QBOEstimate, error)

	// QueryEstimates returns one page of estimates starting at startPosition
	// (1-based); an empty slice means the walk is complete.
	QueryEstimates(ctx context.Context, auth QBOAuth, startPosition, pageSize int) ([]QBOEstimate, error)

	FetchInvoice(ctx context.Context, auth QBOAuth, invoiceID string) (QBOInvoice, error)
	CreateInvoice(ctx context.Context, auth QBOAuth, invoice json.RawMessage) (QBOInvoice, error)
}
