package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreatePackageRequest_ToInput(t *testing.T) {
	r := CreatePackageRequest{
		EstimateID:   " est-1 ",
		RealmID:      " realm-1 ",
		Quantities:   map[string]any{"101": 4, "102": "2.5", "bad": "abc"},
		PackageDate:  "2026-03-02",
		ShipmentDate: "2026-03-05T08:30:00Z",
		SiteContact:  &SiteContactRequest{Name: " Dana ", Phone: " 555-0101 "},
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.EstimateID != "est-1" || in.RealmID != "realm-1" {
		t.Fatalf("expected trimmed ids, got %+v", in)
	}
	if len(in.Quantities) != 2 || in.Quantities["101"] != 4 || in.Quantities["102"] != 2.5 {
		t.Fatalf("unexpected quantities: %+v", in.Quantities)
	}
	if in.PackageDate == nil || !in.PackageDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected package date: %v", in.PackageDate)
	}
	if in.ShipmentDate == nil || !in.ShipmentDate.Equal(time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected shipment date: %v", in.ShipmentDate)
	}
	if in.SiteContact.Name != "Dana" || in.SiteContact.Phone != "555-0101" {
		t.Fatalf("unexpected site contact: %+v", in.SiteContact)
	}
}

func TestCreatePackageRequest_ToInputInvalidDate(t *testing.T) {
	r := CreatePackageRequest{
		EstimateID:  "est-1",
		RealmID:     "realm-1",
		Quantities:  map[string]any{"101": 1},
		PackageDate: "03/02/2026",
	}
	_, err := r.ToInput()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdatePackageRequest_ToInput(t *testing.T) {
	shipment := "2026-03-05"
	driver := "Alex"
	r := UpdatePackageRequest{
		ShipmentDate: &shipment,
		DriverName:   &driver,
		Quantities:   map[string]any{"101": 2},
	}

	in, err := r.ToInput(" realm-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.RealmID != "realm-1" {
		t.Fatalf("expected trimmed realm id, got %q", in.RealmID)
	}
	if in.ShipmentDate == nil || !in.ShipmentDate.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected shipment date: %v", in.ShipmentDate)
	}
	if in.DriverName == nil || *in.DriverName != "Alex" {
		t.Fatalf("unexpected driver: %v", in.DriverName)
	}
	if in.Notes != nil || in.SiteContact != nil {
		t.Fatalf("expected absent fields to stay nil: %+v", in)
	}
	if len(in.Quantities) != 1 {
		t.Fatalf("unexpected quantities: %+v", in.Quantities)
	}
}

func TestParseOptionalDate(t *testing.T) {
	if d, err := parseOptionalDate("  "); err != nil || d != nil {
		t.Fatalf("expected nil for blank input, got %v %v", d, err)
	}
	if _, err := parseOptionalDate("not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
