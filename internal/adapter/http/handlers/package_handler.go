package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "nurseryhub/internal/adapter/http/dto/request"
	response "nurseryhub/internal/adapter/http/dto/response"
	"nurseryhub/internal/usecase"
	"nurseryhub/internal/usecase/interfaces"
	"nurseryhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
	errMissingRealmID        = pkg.NewDomainErrorSimple("INVALID_REALM_ID", "realmId is required", http.StatusBadRequest)
)

// PackageHandler handles HTTP requests for the package lifecycle.
//
// realmId travels in the body on create and as a query parameter on every
// other operation, matching how the frontend already calls the service.

type PackageHandler struct {
	usecase usecase.IPackageUseCase
}

func NewPackageHandler(uc usecase.IPackageUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

// CreatePackage packs the requested quantities against an estimate.
//
// Clamped or skipped lines surface as warnings on a 201; a request with no
// packable quantity at all returns 200 with success=false and no mutation.
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var payload request.CreatePackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusOK
	}
	c.JSON(status, response.FromCreateResult(result))
}

// UpdatePackage replaces the package's quantities and logistics metadata and
// acknowledges with the package id; clients re-fetch the view for fresh state.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	realmID := strings.TrimSpace(c.Query("realmId"))
	if realmID == "" {
		c.JSON(errMissingRealmID.HTTPStatus, errMissingRealmID.ToHTTPError())
		return
	}

	var payload request.UpdatePackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput(realmID)
	if err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUpdateResult(updated))
}

// DeletePackage removes a package and returns the reconciled estimate.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	realmID := strings.TrimSpace(c.Query("realmId"))
	if realmID == "" {
		c.JSON(errMissingRealmID.HTTPStatus, errMissingRealmID.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Delete(c.Request.Context(), c.Param("id"), realmID)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeleteResult(estimate))
}

func (h *PackageHandler) GetPackage(c *gin.Context) {
	realmID := strings.TrimSpace(c.Query("realmId"))
	if realmID == "" {
		c.JSON(errMissingRealmID.HTTPStatus, errMissingRealmID.ToHTTPError())
		return
	}

	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), realmID)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackageView(view))
}

// ListPackages returns the tenant's packages, newest first, filtered by the
// optional search term and package-date range.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	realmID := strings.TrimSpace(c.Query("realmId"))
	if realmID == "" {
		c.JSON(errMissingRealmID.HTTPStatus, errMissingRealmID.ToHTTPError())
		return
	}

	q := interfaces.PackageListQuery{
		RealmID: realmID,
		Search:  c.Query("search"),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 10),
	}

	var err error
	if q.From, err = queryDate(c, "from"); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}
	if q.To, err = queryDate(c, "to"); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackageListPage(page))
}

func mapPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRealmID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "The package changed while deleting; please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrCodeAllocation):
		return pkg.NewDomainError("CODE_ALLOCATION_FAILED", "Could not allocate a package code", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func queryInt(c *gin.Context, name string, def int) int {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func queryDate(c *gin.Context, name string) (*time.Time, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, request.ErrInvalidDate
}
