package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"
)

var (
	ErrMissingAccessToken = errors.New("missing access token")
)

// QBO caps query pages at 1000 rows.
const qboPageSize = 1000

// ISyncUseCase pulls estimates from QuickBooks Online into the local store.
// Credentials arrive per request; nothing is kept in process state.
type ISyncUseCase interface {
	SyncEstimates(ctx context.Context, auth interfaces.QBOAuth) (int, error)
	SyncEstimate(ctx context.Context, auth interfaces.QBOAuth, estimateID string) (entities.Estimate, error)
}

type SyncUseCase struct {
	estimates  interfaces.IEstimateRepository
	accounting interfaces.IAccountingClient

	// shippingItemID is the catalog id QBO uses for shipping charges; its
	// lines are not orderable stock and are excluded from synced estimates.
	shippingItemID string
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(estimates interfaces.IEstimateRepository, accounting interfaces.IAccountingClient) *SyncUseCase {
	return &SyncUseCase{
		estimates:      estimates,
		accounting:     accounting,
		shippingItemID: strings.TrimSpace(os.Getenv("QBO_SHIPPING_ITEM_ID")),
	}
}

// SyncEstimates walks every QBO estimate page for the tenant and upserts each
// into the local store, returning the number synced.
func (u *SyncUseCase) SyncEstimates(ctx context.Context, auth interfaces.QBOAuth) (int, error) {
	if err := validateAuth(auth); err != nil {
		return 0, err
	}

	log.Printf("[sync][estimates] start realm_id=%s", auth.RealmID)
	total := 0
	for start := 1; ; start += qboPageSize {
		page, err := u.accounting.QueryEstimates(ctx, auth, start, qboPageSize)
		if err != nil {
			log.Printf("[sync][estimates] page fetch failed realm_id=%s start=%d err=%v", auth.RealmID, start, err)
			return total, err
		}
		if len(page) == 0 {
			break
		}

		for _, qe := range page {
			if _, err := u.upsertFromQBO(ctx, auth.RealmID, qe); err != nil {
				return total, err
			}
			total++
		}

		if len(page) < qboPageSize {
			break
		}
	}
	log.Printf("[sync][estimates] done realm_id=%s synced=%d", auth.RealmID, total)
	return total, nil
}

// SyncEstimate refreshes a single estimate (webhook-driven updates).
func (u *SyncUseCase) SyncEstimate(ctx context.Context, auth interfaces.QBOAuth, estimateID string) (entities.Estimate, error) {
	if err := validateAuth(auth); err != nil {
		return entities.Estimate{}, err
	}
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	qe, err := u.accounting.FetchEstimate(ctx, auth, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if qe.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return u.upsertFromQBO(ctx, auth.RealmID, qe)
}

// upsertFromQBO maps one QBO estimate onto the local document, carrying the
// fulfilled cache over from the previous revision by item key so a re-sync
// never wipes packaging progress.
func (u *SyncUseCase) upsertFromQBO(ctx context.Context, realmID string, qe interfaces.QBOEstimate) (entities.Estimate, error) {
	existing, err := u.estimates.Get(ctx, realmID, qe.ID)
	if err != nil {
		return entities.Estimate{}, err
	}

	items := u.extractLines(qe)

	fulfilledByKey := make(map[string]float64, len(existing.Items))
	for _, line := range existing.Items {
		if key, ok := line.Key(); ok {
			fulfilledByKey[key.String()] = line.Fulfilled
		}
	}
	for i := range items {
		if key, ok := items[i].Key(); ok {
			items[i].Fulfilled = fulfilledByKey[key.String()]
		}
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		EstimateID:   qe.ID,
		RealmID:      realmID,
		CustomerName: qe.CustomerRef.Name,
		TxnDate:      qe.TxnDate,
		TotalAmount:  qe.TotalAmt,
		TxnStatus:    parseTxnStatus(qe.TxnStatus),
		Items:        items,
		Raw:          string(qe.Raw),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing.EstimateID != "" {
		e.CreatedAt = existing.CreatedAt
	}
	return u.estimates.Upsert(ctx, e)
}

// extractLines keeps only sales lines with a catalog item, excluding the
// shipping sentinel. Zero-quantity lines are kept so they remain visible;
// rate falls back to amount/qty when QBO omits the unit price.
func (u *SyncUseCase) extractLines(qe interfaces.QBOEstimate) []entities.EstimateLine {
	lines := make([]entities.EstimateLine, 0, len(qe.Line))
	for _, l := range qe.Line {
		if l.DetailType != "SalesItemLineDetail" || l.SalesItemLineDetail == nil {
			continue
		}
		d := l.SalesItemLineDetail

		itemID := strings.TrimSpace(d.ItemRef.Value)
		if itemID == "" || (u.shippingItemID != "" && itemID == u.shippingItemID) {
			continue
		}

		qty := d.Qty
		if qty < 0 {
			continue
		}

		amount := l.Amount
		if amount == 0 && qty > 0 {
			amount = qty * d.UnitPrice
		}
		rate := d.UnitPrice
		if rate == 0 && qty > 0 {
			rate = amount / qty
		}

		name := strings.TrimSpace(d.ItemRef.Name)
		if name == "" {
			name = strings.TrimSpace(l.Description)
		}

		lines = append(lines, entities.EstimateLine{
			ItemID:   itemID,
			Name:     name,
			Quantity: qty,
			Rate:     rate,
			Amount:   amount,
		})
	}
	return lines
}

func parseTxnStatus(s string) entities.TxnStatus {
	switch entities.TxnStatus(strings.TrimSpace(s)) {
	case entities.TxnStatusAccepted:
		return entities.TxnStatusAccepted
	case entities.TxnStatusDeclined:
		return entities.TxnStatusDeclined
	case entities.TxnStatusClosed:
		return entities.TxnStatusClosed
	default:
		return entities.TxnStatusPending
	}
}

func validateAuth(auth interfaces.QBOAuth) error {
	if strings.TrimSpace(auth.AccessToken) == "" {
		return ErrMissingAccessToken
	}
	if strings.TrimSpace(auth.RealmID) == "" {
		return ErrInvalidRealmID
	}
	return nil
}
