package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "nurseryhub/internal/adapter/http/dto/response"
	"nurseryhub/internal/usecase"
	"nurseryhub/internal/usecase/interfaces"
	"nurseryhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingCredentials = pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Bearer token and realmId are required", http.StatusUnauthorized)
)

// SyncHandler handles QuickBooks-facing requests: the estimate sync job and
// the invoice hand-off. Credentials arrive per request (Authorization header
// plus realmId); nothing is stored.

type SyncHandler struct {
	sync     usecase.ISyncUseCase
	invoices usecase.IInvoiceUseCase
}

func NewSyncHandler(sync usecase.ISyncUseCase, invoices usecase.IInvoiceUseCase) *SyncHandler {
	return &SyncHandler{sync: sync, invoices: invoices}
}

// SyncEstimates walks every QuickBooks estimate page for the tenant and
// upserts each estimate locally.
func (h *SyncHandler) SyncEstimates(c *gin.Context) {
	auth, ok := qboAuthFromRequest(c)
	if !ok {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	synced, err := h.sync.SyncEstimates(c.Request.Context(), auth)
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncEstimatesResponse{Success: true, Synced: synced})
}

// SyncEstimate refreshes one estimate from QuickBooks.
func (h *SyncHandler) SyncEstimate(c *gin.Context) {
	auth, ok := qboAuthFromRequest(c)
	if !ok {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	estimate, err := h.sync.SyncEstimate(c.Request.Context(), auth, c.Param("estimateId"))
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// CreateInvoice hands a package off to QuickBooks as an invoice.
func (h *SyncHandler) CreateInvoice(c *gin.Context) {
	auth, ok := qboAuthFromRequest(c)
	if !ok {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	inv, err := h.invoices.CreateFromPackage(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetInvoice reads one invoice back from QuickBooks.
func (h *SyncHandler) GetInvoice(c *gin.Context) {
	auth, ok := qboAuthFromRequest(c)
	if !ok {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	inv, err := h.invoices.Get(c.Request.Context(), auth, c.Param("invoiceId"))
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingAccessToken):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Bearer token and realmId are required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidRealmID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidPackageID),
		errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToInvoice):
		return pkg.NewDomainErrorSimple("NOTHING_TO_INVOICE", "Package has no invoiceable lines", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// qboAuthFromRequest assembles per-request QuickBooks credentials from the
// Authorization header and the realmId query parameter.
func qboAuthFromRequest(c *gin.Context) (interfaces.QBOAuth, bool) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	realmID := strings.TrimSpace(c.Query("realmId"))
	if token == "" || realmID == "" {
		return interfaces.QBOAuth{}, false
	}
	return interfaces.QBOAuth{AccessToken: token, RealmID: realmID}, true
}
