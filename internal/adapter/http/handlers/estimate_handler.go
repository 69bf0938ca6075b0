package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "nurseryhub/internal/adapter/http/dto/response"
	"nurseryhub/internal/usecase"
	"nurseryhub/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for locally synced estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetEstimate returns the local estimate with per-line remaining quantities.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.Get(c.Request.Context(), c.Query("realmId"), c.Param("estimateId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimatePackages pages through one estimate's packages, newest first.
func (h *EstimateHandler) ListEstimatePackages(c *gin.Context) {
	page, err := h.usecase.ListPackages(
		c.Request.Context(),
		c.Query("realmId"),
		c.Param("estimateId"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 10),
	)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.EstimatePackagesResponse{
		Estimate: strings.TrimSpace(c.Param("estimateId")),
		Packages: response.FromPackageListPage(page),
	})
}

// DeleteEstimate removes the estimate and all child packages, reversing
// inventory for each package first.
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	removed, err := h.usecase.DeleteCascade(c.Request.Context(), c.Query("realmId"), c.Param("estimateId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DeleteEstimateResponse{Success: true, RemovedPackages: removed})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRealmID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
