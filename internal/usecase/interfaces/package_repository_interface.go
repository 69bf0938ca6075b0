package interfaces

import (
	"context"
	"time"

	"nurseryhub/internal/domain/entities"
)

// PackageListQuery filters the tenant-scoped package listing.
type PackageListQuery struct {
	RealmID string
	Search  string
	From    *time.Time
	To      *time.Time
	Page    int
	Limit   int
}

// PackageListPage is one page of packages plus paging metadata.
type PackageListPage struct {
	Packages   []entities.Package
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// IPackageRepository abstracts DynamoDB persistence for Package.
//
// Not-found is reported as a zero-value Package with a nil error.
type IPackageRepository interface {
	Create(ctx context.Context, p entities.Package) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)

	// Update replaces the stored document wholesale (quantities replacement
	// semantics are decided by the use case, not merged here).
	Update(ctx context.Context, p entities.Package) (entities.Package, error)

	// ListByEstimate returns every package for (realmID, estimateID); the
	// recompute engine sums their quantities maps.
	ListByEstimate(ctx context.Context, realmID, estimateID string) ([]entities.Package, error)

	List(ctx context.Context, q PackageListQuery) (PackageListPage, error)

	// CodeExists reports whether a package code is already taken within the
	// tenant; used for the bounded retry on code allocation.
	CodeExists(ctx context.Context, realmID, code string) (bool, error)

	// DeleteByEstimate hard-deletes all packages of an estimate (cascading
	// estimate delete). Returns the number removed.
	DeleteByEstimate(ctx context.Context, realmID, estimateID string) (int, error)
}
