package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound = errors.New("estimate not found")
)

// RecomputeEngine re-derives every estimate line's fulfilled value from the
// live sum of all active packages' quantities maps and persists the minimal
// diff. It is the system's consistency-repair mechanism: every mutating
// package operation triggers it instead of hand-maintaining deltas, so
// running it twice with no intervening package mutation is a no-op.
type RecomputeEngine struct {
	estimates interfaces.IEstimateRepository
	packages  interfaces.IPackageRepository
}

func NewRecomputeEngine(estimates interfaces.IEstimateRepository, packages interfaces.IPackageRepository) *RecomputeEngine {
	return &RecomputeEngine{estimates: estimates, packages: packages}
}

// Recompute loads the estimate and all its packages, stages the fulfilled
// diff and persists it. With syncStatus set (the delete-path variant) it also
// advances txn_status to Closed once every capped line is fully packed.
// The returned estimate reflects the recomputed state.
func (e *RecomputeEngine) Recompute(ctx context.Context, realmID, estimateID string, syncStatus bool) (entities.Estimate, error) {
	pkgs, err := e.packages.ListByEstimate(ctx, realmID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	estimate, err := e.estimates.Get(ctx, realmID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if estimate.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	changes, status := e.stage(&estimate, pkgs, syncStatus)
	if len(changes) == 0 && status == nil {
		return estimate, nil
	}

	if err := e.estimates.ApplyLineChanges(ctx, realmID, estimateID, changes, status); err != nil {
		return entities.Estimate{}, err
	}
	return estimate, nil
}

// stage computes the target fulfilled value for every line of the estimate
// against the given package set and mutates the in-memory estimate to match.
// It returns only the changed lines (with their pre-change values, so the
// delete transaction can condition on them) plus an optional status advance.
func (e *RecomputeEngine) stage(estimate *entities.Estimate, pkgs []entities.Package, syncStatus bool) ([]interfaces.LineChange, *entities.TxnStatus) {
	totals := sumPackageQuantities(pkgs)

	var changes []interfaces.LineChange
	for i := range estimate.Items {
		line := &estimate.Items[i]

		key, healed, ok := healLineKey(*line, estimate.Raw)
		if !ok {
			log.Printf("[fulfillment][recompute] dropping unkeyable line realm_id=%s estimate_id=%s index=%d", estimate.RealmID, estimate.EstimateID, i)
			continue
		}

		summed := totals[key.String()]
		next := summed
		if line.Quantity > 0 && summed > line.Quantity {
			next = line.Quantity
		}

		if next != line.Fulfilled || healed {
			changes = append(changes, interfaces.LineChange{
				Index:         i,
				Key:           key,
				Fulfilled:     next,
				PrevFulfilled: line.Fulfilled,
				HealID:        healed,
			})
		}
		line.Fulfilled = next
		if healed {
			line.ItemID = key.String()
		}
	}

	var status *entities.TxnStatus
	if syncStatus && estimate.TxnStatus != entities.TxnStatusDeclined && estimate.TxnStatus != entities.TxnStatusClosed && allCappedLinesFulfilled(estimate.Items) {
		closed := entities.TxnStatusClosed
		status = &closed
		estimate.TxnStatus = closed
	}
	return changes, status
}

// sumPackageQuantities flattens every package's quantities map into one
// key -> total sum. Values are already numeric; negative or zero entries
// contribute as-is so a bad write surfaces in the derived state rather than
// being masked here.
func sumPackageQuantities(pkgs []entities.Package) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range pkgs {
		for key, qty := range p.Quantities {
			k := strings.TrimSpace(key)
			if k == "" {
				continue
			}
			totals[k] += qty
		}
	}
	return totals
}

// allCappedLinesFulfilled reports whether every line with a positive ordered
// quantity is fully packed. Estimates with no capped lines never auto-close.
func allCappedLinesFulfilled(items []entities.EstimateLine) bool {
	capped := 0
	for _, line := range items {
		if line.Quantity <= 0 {
			continue
		}
		capped++
		if line.Fulfilled < line.Quantity {
			return false
		}
	}
	return capped > 0
}

// healLineKey resolves the canonical key for a line: the existing item id,
// then an id recovered from the raw QuickBooks snapshot, then the name as a
// last resort. healed reports that the resolved key must be written back to
// items[i].item_id so the next recompute is a no-op with respect to healing.
func healLineKey(line entities.EstimateLine, raw string) (key entities.ItemKey, healed bool, ok bool) {
	if id := strings.TrimSpace(line.ItemID); id != "" {
		return entities.ItemKey{ID: id}, false, true
	}

	name := strings.TrimSpace(line.Name)
	if name == "" {
		return entities.ItemKey{}, false, false
	}

	if id := findItemIDInRaw(raw, name); id != "" {
		return entities.ItemKey{ID: id}, true, true
	}
	return entities.ItemKey{Name: name}, true, true
}

// findItemIDInRaw recovers an item id from the raw QBO estimate payload by
// matching the line name against the snapshot's sales lines.
func findItemIDInRaw(raw, itemName string) string {
	qe, ok := parseRawEstimate(raw)
	if !ok {
		return ""
	}
	for _, l := range qe.Line {
		if l.DetailType != "SalesItemLineDetail" || l.SalesItemLineDetail == nil {
			continue
		}
		if strings.TrimSpace(l.SalesItemLineDetail.ItemRef.Name) == itemName {
			return strings.TrimSpace(l.SalesItemLineDetail.ItemRef.Value)
		}
	}
	return ""
}

func parseRawEstimate(raw string) (interfaces.QBOEstimate, bool) {
	if strings.TrimSpace(raw) == "" {
		return interfaces.QBOEstimate{}, false
	}
	var qe interfaces.QBOEstimate
	if err := json.Unmarshal([]byte(raw), &qe); err != nil {
		return interfaces.QBOEstimate{}, false
	}
	return qe, true
}
