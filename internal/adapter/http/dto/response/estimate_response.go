package response

import (
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"
)

type EstimateLineResponse struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Fulfilled float64 `json:"fulfilled"`
	Remaining float64 `json:"remaining"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}

type EstimateResponse struct {
	EstimateID   string                 `json:"estimateId"`
	RealmID      string                 `json:"realmId"`
	CustomerName string                 `json:"customerName"`
	TxnDate      string                 `json:"txnDate"`
	TotalAmount  float64                `json:"totalAmount"`
	TxnStatus    string                 `json:"txnStatus"`
	Items        []EstimateLineResponse `json:"items"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]EstimateLineResponse, 0, len(e.Items))
	for _, l := range e.Items {
		items = append(items, EstimateLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Fulfilled: l.Fulfilled,
			Remaining: l.Remaining(),
			Rate:      l.Rate,
			Amount:    l.Amount,
		})
	}
	return EstimateResponse{
		EstimateID:   e.EstimateID,
		RealmID:      e.RealmID,
		CustomerName: e.CustomerName,
		TxnDate:      e.TxnDate,
		TotalAmount:  e.TotalAmount,
		TxnStatus:    string(e.TxnStatus),
		Items:        items,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type EstimatePackagesResponse struct {
	Estimate string              `json:"estimateId"`
	Packages PackageListResponse `json:"packages"`
}

type DeleteEstimateResponse struct {
	Success         bool `json:"success"`
	RemovedPackages int  `json:"removedPackages"`
}

type SyncEstimatesResponse struct {
	Success bool `json:"success"`
	Synced  int  `json:"synced"`
}

type InvoiceResponse struct {
	ID          string  `json:"id"`
	TxnDate     string  `json:"txnDate"`
	TotalAmount float64 `json:"totalAmount"`
	Customer    string  `json:"customer"`
}

func FromInvoice(inv interfaces.QBOInvoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		TxnDate:     inv.TxnDate,
		TotalAmount: inv.TotalAmt,
		Customer:    inv.CustomerRef.Name,
	}
}
