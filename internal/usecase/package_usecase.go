package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrInvalidRealmID      = errors.New("invalid realmId")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidPackageID    = errors.New("invalid package id")
	ErrCodeAllocation      = errors.New("package code allocation failed")
	ErrConcurrencyConflict = errors.New("reconciliation transaction conflict")
)

const (
	packageCounterName = "package"
	deleteTxAttempts   = 3
	codeAllocAttempts  = 2
)

// CreatePackageInput is the orchestrator-level command for creating one
// shipment against an estimate. Quantities is already cleaned (string keys,
// numeric values) by the transport layer.
type CreatePackageInput struct {
	EstimateID      string
	RealmID         string
	Quantities      map[string]float64
	Notes           string
	PackageDate     *time.Time
	ShipmentDate    *time.Time
	DriverName      string
	SiteContact     entities.SiteContact
	ShippingAddress string
}

// CreatePackageResult carries the created package identity plus every
// non-fatal warning (clamped, skipped or unknown lines). Success=false with
// a nil error means there was nothing to pack and no mutation happened.
type CreatePackageResult struct {
	Success     bool
	Message     string
	PackageID   string
	PackageCode string
	Totals      entities.PackageTotals
	Warnings    []string
	Package     entities.Package
}

// UpdatePackageInput applies partial logistics-metadata updates and an
// optional wholesale quantities replacement. Nil pointers leave fields as-is.
type UpdatePackageInput struct {
	RealmID         string
	ShipmentDate    *time.Time
	DriverName      *string
	Notes           *string
	SiteContact     *entities.SiteContact
	ShippingAddress *string
	Quantities      map[string]any
}

// PackageViewRow merges one estimate line with this package's contribution.
type PackageViewRow struct {
	ItemID    string
	Name      string
	Ordered   float64
	Fulfilled float64
	Packed    float64
	Rate      float64
	Amount    float64
}

// PackageView is the normalized read model for one package: the package
// document plus its estimate context, keyed consistently by resolved item key.
type PackageView struct {
	Package  entities.Package
	Estimate entities.Estimate
	Rows     []PackageViewRow
}

// IPackageUseCase exposes the package lifecycle: the operations that keep
// Estimate, Package and Item records coherent.
type IPackageUseCase interface {
	Create(ctx context.Context, in CreatePackageInput) (CreatePackageResult, error)
	Update(ctx context.Context, id string, in UpdatePackageInput) (entities.Package, error)
	Delete(ctx context.Context, id, realmID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id, realmID string) (PackageView, error)
	List(ctx context.Context, q interfaces.PackageListQuery) (interfaces.PackageListPage, error)
}

type PackageUseCase struct {
	estimates interfaces.IEstimateRepository
	packages  interfaces.IPackageRepository
	items     interfaces.IItemRepository
	counters  interfaces.ICounterRepository
	tx        interfaces.IReconciliationTx
	recompute *RecomputeEngine
}

var _ IPackageUseCase = (*PackageUseCase)(nil)

func NewPackageUseCase(
	estimates interfaces.IEstimateRepository,
	packages interfaces.IPackageRepository,
	items interfaces.IItemRepository,
	counters interfaces.ICounterRepository,
	tx interfaces.IReconciliationTx,
	recompute *RecomputeEngine,
) *PackageUseCase {
	return &PackageUseCase{
		estimates: estimates,
		packages:  packages,
		items:     items,
		counters:  counters,
		tx:        tx,
		recompute: recompute,
	}
}

// Create packs the requested quantities against the estimate's remaining
// headroom, persists the fulfilled increments and inventory decrements, and
// writes the new package document.
//
// The estimate is always re-read fresh: the remaining index is never cached
// across requests. Increments to fulfilled use targeted atomic updates so
// concurrent creations against other lines are never clobbered; an overpack
// committed by a racing clamp decision is reconciled later by the recompute
// engine (the cached counter self-heals to the true package sum).
func (u *PackageUseCase) Create(ctx context.Context, in CreatePackageInput) (CreatePackageResult, error) {
	realmID := strings.TrimSpace(in.RealmID)
	estimateID := strings.TrimSpace(in.EstimateID)
	if realmID == "" {
		return CreatePackageResult{}, ErrInvalidRealmID
	}
	if estimateID == "" {
		return CreatePackageResult{}, ErrInvalidEstimateID
	}

	estimate, err := u.estimates.Get(ctx, realmID, estimateID)
	if err != nil {
		return CreatePackageResult{}, err
	}
	if estimate.EstimateID == "" {
		return CreatePackageResult{}, ErrEstimateNotFound
	}

	index := BuildRemainingIndex(&estimate)

	// Deterministic iteration so warnings and in-request fulfillment order
	// are stable for a given request body.
	keys := make([]string, 0, len(in.Quantities))
	for k := range in.Quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type packedLine struct {
		entry *RemainingEntry
		key   entities.ItemKey
		qty   float64
	}

	warnings := []string{}
	var packed []packedLine
	var lines []entities.PackageLine
	quantities := make(map[string]float64)

	for _, rawKey := range keys {
		key := strings.TrimSpace(rawKey)
		requested := math.Max(0, in.Quantities[rawKey])
		if key == "" || requested <= 0 {
			continue
		}

		entry, ok := index.Lookup(key)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Item %q not found on estimate; skipping.", key))
			continue
		}
		if entry.Remaining <= 0 {
			warnings = append(warnings, fmt.Sprintf("Item %q is already fully fulfilled; skipping.", entry.Line.Name))
			continue
		}

		toPack := math.Min(requested, entry.Remaining)
		if requested > entry.Remaining {
			warnings = append(warnings, fmt.Sprintf(
				"Requested %s of %q but only %s remaining. Packaging %s.",
				formatQty(requested), entry.Line.Name, formatQty(entry.Remaining), formatQty(toPack)))
		}

		canonical, ok := entry.Line.Key()
		if !ok {
			// Unkeyable lines are excluded from the index, so this line
			// cannot be reached through a lookup.
			continue
		}

		lines = append(lines, entities.PackageLine{
			ItemID:   canonical.String(),
			Name:     entry.Line.Name,
			Quantity: toPack,
			Rate:     entry.Line.Rate,
			Amount:   entry.Line.Rate * toPack,
		})
		quantities[canonical.String()] += toPack

		// Visible to subsequent lookups in this same request only; the
		// durable increment happens below.
		entry.Line.Fulfilled += toPack
		entry.Remaining -= toPack

		packed = append(packed, packedLine{entry: entry, key: canonical, qty: toPack})
	}

	if len(lines) == 0 {
		return CreatePackageResult{
			Success:  false,
			Message:  "No valid quantities to package",
			Warnings: warnings,
		}, nil
	}

	// Targeted per-line increments rather than a document rewrite, so
	// concurrent edits to other lines are preserved. A mismatched line
	// (estimate re-synced underneath us) falls back to a full recompute.
	needsRecompute := false
	for _, p := range packed {
		matched, err := u.estimates.IncrementLineFulfilled(ctx, realmID, estimateID, p.entry.Index, p.key, p.qty)
		if err != nil {
			log.Printf("[package][create] fulfilled increment failed realm_id=%s estimate_id=%s key=%s err=%v", realmID, estimateID, p.key.String(), err)
			return CreatePackageResult{}, err
		}
		if !matched {
			log.Printf("[package][create] line moved under increment; scheduling recompute realm_id=%s estimate_id=%s key=%s", realmID, estimateID, p.key.String())
			needsRecompute = true
		}
	}

	for _, p := range packed {
		if !p.key.Identified() {
			log.Printf("[package][create] line has no catalog item; inventory untouched realm_id=%s name=%q", realmID, p.key.Name)
			continue
		}
		tracked, err := u.items.AdjustQuantity(ctx, realmID, p.key.ID, -p.qty)
		if err != nil {
			log.Printf("[package][create] inventory decrement failed realm_id=%s item_id=%s err=%v", realmID, p.key.ID, err)
			return CreatePackageResult{}, err
		}
		if !tracked {
			// Catalog-sync inconsistency: never fabricate a phantom row.
			log.Printf("[package][create] item not in local inventory; decrement skipped realm_id=%s item_id=%s qty=%s", realmID, p.key.ID, formatQty(p.qty))
		}
	}

	code, err := u.allocateCode(ctx, realmID)
	if err != nil {
		return CreatePackageResult{}, err
	}

	now := time.Now().UTC()
	packageDate := now
	if in.PackageDate != nil {
		packageDate = *in.PackageDate
	}

	pkg := entities.Package{
		ID:              uuid.NewString(),
		PackageCode:     code,
		EstimateID:      estimateID,
		RealmID:         realmID,
		Quantities:      quantities,
		Lines:           lines,
		Totals:          sumLineTotals(lines),
		Snapshot:        buildSnapshot(estimate),
		PackageDate:     packageDate,
		ShipmentDate:    in.ShipmentDate,
		DriverName:      strings.TrimSpace(in.DriverName),
		SiteContact:     in.SiteContact,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Notes:           in.Notes,
		Status:          entities.PackageStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.packages.Create(ctx, pkg)
	if err != nil {
		log.Printf("[package][create] package write failed realm_id=%s estimate_id=%s code=%s err=%v", realmID, estimateID, code, err)
		return CreatePackageResult{}, err
	}

	if needsRecompute {
		if _, err := u.recompute.Recompute(ctx, realmID, estimateID, false); err != nil {
			log.Printf("[package][create] post-create recompute failed realm_id=%s estimate_id=%s err=%v", realmID, estimateID, err)
		}
	}

	return CreatePackageResult{
		Success:     true,
		PackageID:   created.ID,
		PackageCode: created.PackageCode,
		Totals:      created.Totals,
		Warnings:    warnings,
		Package:     created,
	}, nil
}

// Update applies metadata changes and, when submitted, replaces the
// quantities map wholesale, regenerating lines/totals from the new
// quantities and the estimate's current rates before triggering a recompute.
// Inventory is deliberately not adjusted on quantity edits; the recompute
// engine keeps fulfilled consistent and stock drift is handled operationally.
func (u *PackageUseCase) Update(ctx context.Context, id string, in UpdatePackageInput) (entities.Package, error) {
	id = strings.TrimSpace(id)
	realmID := strings.TrimSpace(in.RealmID)
	if id == "" {
		return entities.Package{}, ErrInvalidPackageID
	}
	if realmID == "" {
		return entities.Package{}, ErrInvalidRealmID
	}

	pkg, err := u.packages.GetByID(ctx, id)
	if err != nil {
		return entities.Package{}, err
	}
	if pkg.ID == "" || pkg.RealmID != realmID {
		return entities.Package{}, ErrPackageNotFound
	}

	if in.ShipmentDate != nil {
		pkg.ShipmentDate = in.ShipmentDate
	}
	if in.DriverName != nil {
		pkg.DriverName = strings.TrimSpace(*in.DriverName)
	}
	if in.Notes != nil {
		pkg.Notes = *in.Notes
	}
	if in.SiteContact != nil {
		pkg.SiteContact = *in.SiteContact
	}
	if in.ShippingAddress != nil {
		pkg.ShippingAddress = strings.TrimSpace(*in.ShippingAddress)
	}

	quantitiesChanged := in.Quantities != nil
	if quantitiesChanged {
		estimate, err := u.estimates.Get(ctx, realmID, pkg.EstimateID)
		if err != nil {
			return entities.Package{}, err
		}
		if estimate.EstimateID == "" {
			return entities.Package{}, ErrEstimateNotFound
		}

		pkg.Quantities = canonicalizeQuantities(CleanQuantities(in.Quantities), &estimate)
		pkg.Lines, pkg.Totals = regenerateLines(pkg.Quantities, &estimate)
	}

	pkg.UpdatedAt = time.Now().UTC()
	updated, err := u.packages.Update(ctx, pkg)
	if err != nil {
		return entities.Package{}, err
	}

	if quantitiesChanged {
		if _, err := u.recompute.Recompute(ctx, realmID, pkg.EstimateID, false); err != nil {
			log.Printf("[package][update] recompute failed realm_id=%s estimate_id=%s err=%v", realmID, pkg.EstimateID, err)
			return entities.Package{}, err
		}
	}
	return updated, nil
}

// Delete hard-deletes a package and commits the post-delete fulfilled values,
// status advance and inventory reversals as a single transaction, retrying a
// bounded number of times on write conflicts. The returned estimate is the
// post-recompute snapshot.
func (u *PackageUseCase) Delete(ctx context.Context, id, realmID string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	realmID = strings.TrimSpace(realmID)
	if id == "" {
		return entities.Estimate{}, ErrInvalidPackageID
	}
	if realmID == "" {
		return entities.Estimate{}, ErrInvalidRealmID
	}

	for attempt := 1; attempt <= deleteTxAttempts; attempt++ {
		pkg, err := u.packages.GetByID(ctx, id)
		if err != nil {
			return entities.Estimate{}, err
		}
		if pkg.ID == "" || pkg.RealmID != realmID {
			return entities.Estimate{}, ErrPackageNotFound
		}

		estimate, err := u.estimates.Get(ctx, realmID, pkg.EstimateID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if estimate.EstimateID == "" {
			return entities.Estimate{}, ErrEstimateNotFound
		}

		all, err := u.packages.ListByEstimate(ctx, realmID, pkg.EstimateID)
		if err != nil {
			return entities.Estimate{}, err
		}
		surviving := make([]entities.Package, 0, len(all))
		for _, p := range all {
			if p.ID != pkg.ID {
				surviving = append(surviving, p)
			}
		}

		changes, status := u.recompute.stage(&estimate, surviving, true)

		reversals, err := u.stageReversals(ctx, realmID, pkg)
		if err != nil {
			return entities.Estimate{}, err
		}

		committed, err := u.tx.DeletePackageAndReconcile(ctx, interfaces.DeleteReconcileInput{
			Package:     pkg,
			LineChanges: changes,
			Status:      status,
			Reversals:   reversals,
		})
		if err != nil {
			log.Printf("[package][delete] transaction failed realm_id=%s estimate_id=%s package_id=%s err=%v", realmID, pkg.EstimateID, pkg.ID, err)
			return entities.Estimate{}, err
		}
		if committed {
			return estimate, nil
		}
		log.Printf("[package][delete] transaction conflict; retrying realm_id=%s package_id=%s attempt=%d", realmID, id, attempt)
	}
	return entities.Estimate{}, ErrConcurrencyConflict
}

// stageReversals builds the inventory re-increments for a package about to be
// deleted, restoring inventory = initial - sum(active package quantities).
// Quantity-map keys that are not tracked catalog items are logged and skipped
// rather than fabricated.
func (u *PackageUseCase) stageReversals(ctx context.Context, realmID string, pkg entities.Package) ([]interfaces.InventoryReversal, error) {
	keys := make([]string, 0, len(pkg.Quantities))
	for k := range pkg.Quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var reversals []interfaces.InventoryReversal
	for _, key := range keys {
		qty := pkg.Quantities[key]
		if qty <= 0 {
			continue
		}
		item, err := u.items.Get(ctx, realmID, key)
		if err != nil {
			return nil, err
		}
		if item.ItemID == "" {
			log.Printf("[package][delete] no inventory row for key; reversal skipped realm_id=%s key=%q qty=%s", realmID, key, formatQty(qty))
			continue
		}
		reversals = append(reversals, interfaces.InventoryReversal{ItemID: key, Delta: qty})
	}
	return reversals, nil
}

// GetByID returns the package merged with its estimate's lines, keyed by
// resolved item key, plus any package quantities that no longer match an
// estimate line.
func (u *PackageUseCase) GetByID(ctx context.Context, id, realmID string) (PackageView, error) {
	id = strings.TrimSpace(id)
	realmID = strings.TrimSpace(realmID)
	if id == "" {
		return PackageView{}, ErrInvalidPackageID
	}
	if realmID == "" {
		return PackageView{}, ErrInvalidRealmID
	}

	pkg, err := u.packages.GetByID(ctx, id)
	if err != nil {
		return PackageView{}, err
	}
	if pkg.ID == "" || pkg.RealmID != realmID {
		return PackageView{}, ErrPackageNotFound
	}

	estimate, err := u.estimates.Get(ctx, realmID, pkg.EstimateID)
	if err != nil {
		return PackageView{}, err
	}
	if estimate.EstimateID == "" {
		return PackageView{}, ErrEstimateNotFound
	}

	seen := make(map[string]bool, len(pkg.Quantities))
	rows := make([]PackageViewRow, 0, len(estimate.Items))
	for _, line := range estimate.Items {
		key, ok := line.Key()
		if !ok {
			continue
		}
		packed := pkg.Quantities[key.String()]
		seen[key.String()] = true
		rows = append(rows, PackageViewRow{
			ItemID:    key.String(),
			Name:      line.Name,
			Ordered:   line.Quantity,
			Fulfilled: line.Fulfilled,
			Packed:    packed,
			Rate:      line.Rate,
			Amount:    line.Rate * packed,
		})
	}

	// Orphaned quantity keys (estimate re-synced since packing) still show up.
	orphans := make([]string, 0)
	for key := range pkg.Quantities {
		if !seen[key] {
			orphans = append(orphans, key)
		}
	}
	sort.Strings(orphans)
	for _, key := range orphans {
		rows = append(rows, PackageViewRow{ItemID: key, Name: key, Packed: pkg.Quantities[key]})
	}

	return PackageView{Package: pkg, Estimate: estimate, Rows: rows}, nil
}

func (u *PackageUseCase) List(ctx context.Context, q interfaces.PackageListQuery) (interfaces.PackageListPage, error) {
	q.RealmID = strings.TrimSpace(q.RealmID)
	if q.RealmID == "" {
		return interfaces.PackageListPage{}, ErrInvalidRealmID
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return u.packages.List(ctx, q)
}

// allocateCode reserves the next tenant-scoped package code from the yearly
// sequence counter, retrying once if the code is somehow already taken.
func (u *PackageUseCase) allocateCode(ctx context.Context, realmID string) (string, error) {
	year := time.Now().UTC().Year()
	for attempt := 0; attempt < codeAllocAttempts; attempt++ {
		seq, err := u.counters.Next(ctx, realmID, packageCounterName, year)
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("PKG-%d-%04d", year, seq)

		exists, err := u.packages.CodeExists(ctx, realmID, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		log.Printf("[package][create] package code collision realm_id=%s code=%s", realmID, code)
	}
	return "", ErrCodeAllocation
}

// CleanQuantities normalizes a caller-submitted quantities map: trims keys,
// drops empty keys and the literal "undefined" placeholder, and coerces
// values to non-negative numbers, discarding entries that do not survive.
func CleanQuantities(raw map[string]any) map[string]float64 {
	cleaned := make(map[string]float64, len(raw))
	for rawKey, rawVal := range raw {
		key := strings.TrimSpace(rawKey)
		if key == "" || key == "undefined" {
			continue
		}
		qty := toNumber(rawVal)
		if qty <= 0 {
			continue
		}
		cleaned[key] += qty
	}
	return cleaned
}

// canonicalizeQuantities rekeys a cleaned quantities map by each resolved
// estimate line's canonical key, the same key Create stores, so the recompute
// engine can match the entries back to their lines. Keys that resolve to the
// same line are summed; keys that resolve to no line are logged and dropped,
// mirroring Create's skip behavior.
func canonicalizeQuantities(quantities map[string]float64, estimate *entities.Estimate) map[string]float64 {
	index := BuildRemainingIndex(estimate)
	canonical := make(map[string]float64, len(quantities))
	for key, qty := range quantities {
		entry, ok := index.Lookup(key)
		if !ok {
			log.Printf("[package][update] key matches no estimate line; dropped realm_id=%s estimate_id=%s key=%q qty=%s",
				estimate.RealmID, estimate.EstimateID, key, formatQty(qty))
			continue
		}
		ck, ok := entry.Line.Key()
		if !ok {
			continue
		}
		canonical[ck.String()] += qty
	}
	return canonical
}

func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// regenerateLines rebuilds the display lines and totals from a quantities map
// and the estimate's current rates. Keys that no longer resolve to an
// estimate line keep a zero rate so the quantity stays visible.
func regenerateLines(quantities map[string]float64, estimate *entities.Estimate) ([]entities.PackageLine, entities.PackageTotals) {
	index := BuildRemainingIndex(estimate)

	keys := make([]string, 0, len(quantities))
	for k := range quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]entities.PackageLine, 0, len(keys))
	for _, key := range keys {
		qty := quantities[key]
		line := entities.PackageLine{ItemID: key, Name: key, Quantity: qty}
		if entry, ok := index.Lookup(key); ok {
			if canonical, ok := entry.Line.Key(); ok {
				line.ItemID = canonical.String()
			}
			line.Name = entry.Line.Name
			line.Rate = entry.Line.Rate
			line.Amount = entry.Line.Rate * qty
		}
		lines = append(lines, line)
	}
	return lines, sumLineTotals(lines)
}

func sumLineTotals(lines []entities.PackageLine) entities.PackageTotals {
	var t entities.PackageTotals
	for _, l := range lines {
		t.Lines += l.Quantity
		t.Amount += l.Amount
	}
	return t
}

// buildSnapshot captures the customer/address fields used for printing at
// package-creation time, independent of later estimate syncs.
func buildSnapshot(estimate entities.Estimate) entities.PackageSnapshot {
	snap := entities.PackageSnapshot{
		CustomerName: estimate.CustomerName,
		TxnDate:      estimate.TxnDate,
		TotalAmount:  estimate.TotalAmount,
	}
	if qe, ok := parseRawEstimate(estimate.Raw); ok {
		snap.BillTo = formatAddress(qe.BillAddr)
		snap.ShipTo = formatAddress(qe.ShipAddr)
	}
	return snap
}

func formatAddress(addr *interfaces.QBOAddress) string {
	if addr == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{addr.Line1, addr.Line2, addr.City, addr.CountrySubDivisionCode, addr.PostalCode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
