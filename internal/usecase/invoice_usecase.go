package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"nurseryhub/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrNothingToInvoice = errors.New("package has no invoiceable lines")
)

// IInvoiceUseCase hands a package off to the accounting platform as an
// invoice, and reads invoices back for display.
type IInvoiceUseCase interface {
	CreateFromPackage(ctx context.Context, auth interfaces.QBOAuth, packageID string) (interfaces.QBOInvoice, error)
	Get(ctx context.Context, auth interfaces.QBOAuth, invoiceID string) (interfaces.QBOInvoice, error)
}

type InvoiceUseCase struct {
	estimates  interfaces.IEstimateRepository
	packages   interfaces.IPackageRepository
	accounting interfaces.IAccountingClient
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(estimates interfaces.IEstimateRepository, packages interfaces.IPackageRepository, accounting interfaces.IAccountingClient) *InvoiceUseCase {
	return &InvoiceUseCase{estimates: estimates, packages: packages, accounting: accounting}
}

// CreateFromPackage builds a QBO invoice from the package's lines and the
// customer reference recovered from the estimate's raw snapshot. Name-only
// lines carry no catalog id and cannot be invoiced upstream; they are skipped
// with a log line rather than failing the whole hand-off.
func (u *InvoiceUseCase) CreateFromPackage(ctx context.Context, auth interfaces.QBOAuth, packageID string) (interfaces.QBOInvoice, error) {
	if err := validateAuth(auth); err != nil {
		return interfaces.QBOInvoice{}, err
	}
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return interfaces.QBOInvoice{}, ErrInvalidPackageID
	}

	pkg, err := u.packages.GetByID(ctx, packageID)
	if err != nil {
		return interfaces.QBOInvoice{}, err
	}
	if pkg.ID == "" || pkg.RealmID != auth.RealmID {
		return interfaces.QBOInvoice{}, ErrPackageNotFound
	}

	estimate, err := u.estimates.Get(ctx, auth.RealmID, pkg.EstimateID)
	if err != nil {
		return interfaces.QBOInvoice{}, err
	}
	if estimate.EstimateID == "" {
		return interfaces.QBOInvoice{}, ErrEstimateNotFound
	}

	customerRef := interfaces.QBORef{Name: pkg.Snapshot.CustomerName}
	if qe, ok := parseRawEstimate(estimate.Raw); ok {
		customerRef = qe.CustomerRef
	}

	lines := make([]interfaces.QBOLine, 0, len(pkg.Lines))
	for _, l := range pkg.Lines {
		if strings.TrimSpace(l.ItemID) == "" {
			log.Printf("[invoice][create] skipping name-only line package_id=%s name=%q", pkg.ID, l.Name)
			continue
		}
		lines = append(lines, interfaces.QBOLine{
			DetailType:  "SalesItemLineDetail",
			Amount:      l.Amount,
			Description: l.Name,
			SalesItemLineDetail: &interfaces.QBOSalesItemLineDetail{
				ItemRef:   interfaces.QBORef{Value: l.ItemID, Name: l.Name},
				Qty:       l.Quantity,
				UnitPrice: l.Rate,
			},
		})
	}
	if len(lines) == 0 {
		return interfaces.QBOInvoice{}, ErrNothingToInvoice
	}

	payload, err := json.Marshal(map[string]any{
		"CustomerRef": customerRef,
		"TxnDate":     pkg.Snapshot.TxnDate,
		"Line":        lines,
	})
	if err != nil {
		return interfaces.QBOInvoice{}, err
	}

	inv, err := u.accounting.CreateInvoice(ctx, auth, payload)
	if err != nil {
		log.Printf("[invoice][create] upstream create failed package_id=%s err=%v", pkg.ID, err)
		return interfaces.QBOInvoice{}, err
	}
	log.Printf("[invoice][create] created invoice_id=%s package_id=%s lines=%d", inv.ID, pkg.ID, len(lines))
	return inv, nil
}

func (u *InvoiceUseCase) Get(ctx context.Context, auth interfaces.QBOAuth, invoiceID string) (interfaces.QBOInvoice, error) {
	if err := validateAuth(auth); err != nil {
		return interfaces.QBOInvoice{}, err
	}
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return interfaces.QBOInvoice{}, ErrInvalidInvoiceID
	}
	return u.accounting.FetchInvoice(ctx, auth, invoiceID)
}
