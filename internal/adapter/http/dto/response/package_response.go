package response

import (
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase"
	"nurseryhub/internal/usecase/interfaces"
)

type SiteContactResponse struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PackageLineResponse struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

type PackageTotalsResponse struct {
	Lines  float64 `json:"lines"`
	Amount float64 `json:"amount"`
}

type PackageSnapshotResponse struct {
	CustomerName string  `json:"customerName"`
	TxnDate      string  `json:"txnDate"`
	TotalAmount  float64 `json:"totalAmount"`
	BillTo       string  `json:"billTo,omitempty"`
	ShipTo       string  `json:"shipTo,omitempty"`
}

type PackageResponse struct {
	ID              string                  `json:"id"`
	PackageCode     string                  `json:"packageCode"`
	EstimateID      string                  `json:"estimateId"`
	RealmID         string                  `json:"realmId"`
	Quantities      map[string]float64      `json:"quantities"`
	Lines           []PackageLineResponse   `json:"lines"`
	Totals          PackageTotalsResponse   `json:"totals"`
	Snapshot        PackageSnapshotResponse `json:"snapshot"`
	PackageDate     time.Time               `json:"packageDate"`
	ShipmentDate    *time.Time              `json:"shipmentDate,omitempty"`
	DriverName      string                  `json:"driverName,omitempty"`
	SiteContact     SiteContactResponse     `json:"siteContact"`
	ShippingAddress string                  `json:"shippingAddress,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func FromPackage(p entities.Package) PackageResponse {
	lines := make([]PackageLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, PackageLineResponse(l))
	}
	return PackageResponse{
		ID:              p.ID,
		PackageCode:     p.PackageCode,
		EstimateID:      p.EstimateID,
		RealmID:         p.RealmID,
		Quantities:      p.Quantities,
		Lines:           lines,
		Totals:          PackageTotalsResponse(p.Totals),
		Snapshot:        PackageSnapshotResponse(p.Snapshot),
		PackageDate:     p.PackageDate,
		ShipmentDate:    p.ShipmentDate,
		DriverName:      p.DriverName,
		SiteContact:     SiteContactResponse(p.SiteContact),
		ShippingAddress: p.ShippingAddress,
		Notes:           p.Notes,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// CreatePackageResponse mirrors the create result: success=false carries the
// reason and warnings with no package identity.
type CreatePackageResponse struct {
	Success     bool                   `json:"success"`
	Message     string                 `json:"message,omitempty"`
	PackageID   string                 `json:"packageId,omitempty"`
	PackageCode string                 `json:"packageCode,omitempty"`
	Totals      *PackageTotalsResponse `json:"totals,omitempty"`
	Warnings    []string               `json:"warnings"`
	Package     *PackageResponse       `json:"package,omitempty"`
}

func FromCreateResult(r usecase.CreatePackageResult) CreatePackageResponse {
	resp := CreatePackageResponse{
		Success:  r.Success,
		Message:  r.Message,
		Warnings: r.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	if r.Success {
		totals := PackageTotalsResponse(r.Totals)
		pkg := FromPackage(r.Package)
		resp.PackageID = r.PackageID
		resp.PackageCode = r.PackageCode
		resp.Totals = &totals
		resp.Package = &pkg
	}
	return resp
}

// UpdatePackageResponse acknowledges a replace; callers re-fetch the detailed
// view for the post-recompute state instead of patching from this body.
type UpdatePackageResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

func FromUpdateResult(p entities.Package) UpdatePackageResponse {
	return UpdatePackageResponse{OK: true, ID: p.ID}
}

// PackageViewRowResponse is one merged estimate/package line in the detailed
// package view.
type PackageViewRowResponse struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Ordered   float64 `json:"ordered"`
	Fulfilled float64 `json:"fulfilled"`
	Remaining float64 `json:"remaining"`
	Packed    float64 `json:"packed"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}

type PackageViewResponse struct {
	Package  PackageResponse          `json:"package"`
	Estimate EstimateResponse         `json:"estimate"`
	Rows     []PackageViewRowResponse `json:"rows"`
}

func FromPackageView(v usecase.PackageView) PackageViewResponse {
	rows := make([]PackageViewRowResponse, 0, len(v.Rows))
	for _, row := range v.Rows {
		remaining := row.Ordered - row.Fulfilled
		if remaining < 0 {
			remaining = 0
		}
		rows = append(rows, PackageViewRowResponse{
			ItemID:    row.ItemID,
			Name:      row.Name,
			Ordered:   row.Ordered,
			Fulfilled: row.Fulfilled,
			Remaining: remaining,
			Packed:    row.Packed,
			Rate:      row.Rate,
			Amount:    row.Amount,
		})
	}
	return PackageViewResponse{
		Package:  FromPackage(v.Package),
		Estimate: FromEstimate(v.Estimate),
		Rows:     rows,
	}
}

type PackageListResponse struct {
	Packages   []PackageResponse `json:"packages"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

func FromPackageListPage(p interfaces.PackageListPage) PackageListResponse {
	pkgs := make([]PackageResponse, 0, len(p.Packages))
	for _, pkg := range p.Packages {
		pkgs = append(pkgs, FromPackage(pkg))
	}
	return PackageListResponse{
		Packages:   pkgs,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

// DeletePackageResponse returns the reconciled estimate so the frontend can
// refresh remaining quantities without a second round trip.
type DeletePackageResponse struct {
	Success  bool             `json:"success"`
	Estimate EstimateResponse `json:"estimate"`
}

func FromDeleteResult(e entities.Estimate) DeletePackageResponse {
	return DeletePackageResponse{Success: true, Estimate: FromEstimate(e)}
}
