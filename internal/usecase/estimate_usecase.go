package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"
)

// IEstimateUseCase exposes the local estimate read surface plus the explicit
// cascading delete (the only way this service ever removes an estimate).
type IEstimateUseCase interface {
	Get(ctx context.Context, realmID, estimateID string) (entities.Estimate, error)
	ListPackages(ctx context.Context, realmID, estimateID string, page, limit int) (interfaces.PackageListPage, error)
	DeleteCascade(ctx context.Context, realmID, estimateID string) (removedPackages int, err error)
}

type EstimateUseCase struct {
	estimates interfaces.IEstimateRepository
	packages  interfaces.IPackageRepository
	items     interfaces.IItemRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(estimates interfaces.IEstimateRepository, packages interfaces.IPackageRepository, items interfaces.IItemRepository) *EstimateUseCase {
	return &EstimateUseCase{estimates: estimates, packages: packages, items: items}
}

func (u *EstimateUseCase) Get(ctx context.Context, realmID, estimateID string) (entities.Estimate, error) {
	realmID = strings.TrimSpace(realmID)
	estimateID = strings.TrimSpace(estimateID)
	if realmID == "" {
		return entities.Estimate{}, ErrInvalidRealmID
	}
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.estimates.Get(ctx, realmID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.EstimateID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// ListPackages pages through one estimate's packages, newest first.
func (u *EstimateUseCase) ListPackages(ctx context.Context, realmID, estimateID string, page, limit int) (interfaces.PackageListPage, error) {
	realmID = strings.TrimSpace(realmID)
	estimateID = strings.TrimSpace(estimateID)
	if realmID == "" {
		return interfaces.PackageListPage{}, ErrInvalidRealmID
	}
	if estimateID == "" {
		return interfaces.PackageListPage{}, ErrInvalidEstimateID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pkgs, err := u.packages.ListByEstimate(ctx, realmID, estimateID)
	if err != nil {
		return interfaces.PackageListPage{}, err
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].CreatedAt.After(pkgs[j].CreatedAt) })

	total := len(pkgs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return interfaces.PackageListPage{
		Packages:   pkgs[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// DeleteCascade removes an estimate together with every child package,
// reversing inventory for each package first so on-hand stock ends up as if
// none of them had ever been packed.
func (u *EstimateUseCase) DeleteCascade(ctx context.Context, realmID, estimateID string) (int, error) {
	realmID = strings.TrimSpace(realmID)
	estimateID = strings.TrimSpace(estimateID)
	if realmID == "" {
		return 0, ErrInvalidRealmID
	}
	if estimateID == "" {
		return 0, ErrInvalidEstimateID
	}

	e, err := u.estimates.Get(ctx, realmID, estimateID)
	if err != nil {
		return 0, err
	}
	if e.EstimateID == "" {
		return 0, ErrEstimateNotFound
	}

	pkgs, err := u.packages.ListByEstimate(ctx, realmID, estimateID)
	if err != nil {
		return 0, err
	}
	for _, pkg := range pkgs {
		for key, qty := range pkg.Quantities {
			if qty <= 0 {
				continue
			}
			tracked, err := u.items.AdjustQuantity(ctx, realmID, key, qty)
			if err != nil {
				return 0, err
			}
			if !tracked {
				log.Printf("[estimate][delete] no inventory row for key; reversal skipped realm_id=%s key=%q", realmID, key)
			}
		}
	}

	removed, err := u.packages.DeleteByEstimate(ctx, realmID, estimateID)
	if err != nil {
		return 0, err
	}

	found, err := u.estimates.Delete(ctx, realmID, estimateID)
	if err != nil {
		return removed, err
	}
	if !found {
		return removed, ErrEstimateNotFound
	}
	log.Printf("[estimate][delete] cascade complete realm_id=%s estimate_id=%s packages_removed=%d", realmID, estimateID, removed)
	return removed, nil
}
