package request

import (
	"errors"
	"strings"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date value")
)

// Dates arrive from the frontend either as plain calendar dates or full
// RFC 3339 timestamps.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

type SiteContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreatePackageRequest is the payload for creating one package against an
// estimate. Quantities values are accepted as numbers or numeric strings and
// normalized before reaching the use case.
type CreatePackageRequest struct {
	EstimateID      string              `json:"estimateId" binding:"required"`
	RealmID         string              `json:"realmId" binding:"required"`
	Quantities      map[string]any      `json:"quantities" binding:"required"`
	Notes           string              `json:"notes"`
	PackageDate     string              `json:"packageDate"`
	ShipmentDate    string              `json:"shipmentDate"`
	DriverName      string              `json:"driverName"`
	SiteContact     *SiteContactRequest `json:"siteContact"`
	ShippingAddress string              `json:"shippingAddress"`
}

func (r CreatePackageRequest) ToInput() (usecase.CreatePackageInput, error) {
	packageDate, err := parseOptionalDate(r.PackageDate)
	if err != nil {
		return usecase.CreatePackageInput{}, err
	}
	shipmentDate, err := parseOptionalDate(r.ShipmentDate)
	if err != nil {
		return usecase.CreatePackageInput{}, err
	}

	in := usecase.CreatePackageInput{
		EstimateID:      strings.TrimSpace(r.EstimateID),
		RealmID:         strings.TrimSpace(r.RealmID),
		Quantities:      usecase.CleanQuantities(r.Quantities),
		Notes:           r.Notes,
		PackageDate:     packageDate,
		ShipmentDate:    shipmentDate,
		DriverName:      r.DriverName,
		ShippingAddress: r.ShippingAddress,
	}
	if r.SiteContact != nil {
		in.SiteContact = entities.SiteContact{
			Name:  strings.TrimSpace(r.SiteContact.Name),
			Phone: strings.TrimSpace(r.SiteContact.Phone),
		}
	}
	return in, nil
}

// UpdatePackageRequest applies partial updates; absent fields stay untouched.
// A present quantities map replaces the stored one wholesale.
type UpdatePackageRequest struct {
	ShipmentDate    *string             `json:"shipmentDate"`
	DriverName      *string             `json:"driverName"`
	Notes           *string             `json:"notes"`
	SiteContact     *SiteContactRequest `json:"siteContact"`
	ShippingAddress *string             `json:"shippingAddress"`
	Quantities      map[string]any      `json:"quantities"`
}

func (r UpdatePackageRequest) ToInput(realmID string) (usecase.UpdatePackageInput, error) {
	in := usecase.UpdatePackageInput{
		RealmID:         strings.TrimSpace(realmID),
		DriverName:      r.DriverName,
		Notes:           r.Notes,
		ShippingAddress: r.ShippingAddress,
		Quantities:      r.Quantities,
	}

	if r.ShipmentDate != nil {
		t, err := parseOptionalDate(*r.ShipmentDate)
		if err != nil {
			return usecase.UpdatePackageInput{}, err
		}
		in.ShipmentDate = t
	}
	if r.SiteContact != nil {
		in.SiteContact = &entities.SiteContact{
			Name:  strings.TrimSpace(r.SiteContact.Name),
			Phone: strings.TrimSpace(r.SiteContact.Phone),
		}
	}
	return in, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, ErrInvalidDate
}
