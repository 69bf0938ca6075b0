package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nurseryhub/internal/domain/entities"
	mock_interfaces "nurseryhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_Get(t *testing.T) {
	t.Run("invalid realm id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.Get(context.Background(), "  ", "est-1")
		if !errors.Is(err, ErrInvalidRealmID) {
			t.Fatalf("expected ErrInvalidRealmID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(estimates, nil, nil)

		estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.Get(context.Background(), "realm-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(estimates, nil, nil)

		estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(entities.Estimate{EstimateID: "est-1", RealmID: "realm-1"}, nil)

		e, err := uc.Get(context.Background(), " realm-1 ", " est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.EstimateID != "est-1" {
			t.Fatalf("unexpected estimate: %+v", e)
		}
	})
}

func TestEstimateUseCase_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	packages := mock_interfaces.NewMockIPackageRepository(ctrl)
	uc := NewEstimateUseCase(nil, packages, nil)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Minute)},
	}, nil)

	page, err := uc.ListPackages(context.Background(), "realm-1", "est-1", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 {
		t.Fatalf("unexpected paging: %+v", page)
	}
	if len(page.Packages) != 2 || page.Packages[0].ID != "new" || page.Packages[1].ID != "mid" {
		t.Fatalf("expected newest first, got %+v", page.Packages)
	}
}

func TestEstimateUseCase_DeleteCascade(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(estimates, nil, nil)

		estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.DeleteCascade(context.Background(), "realm-1", "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("reverses inventory for every package then deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		packages := mock_interfaces.NewMockIPackageRepository(ctrl)
		items := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewEstimateUseCase(estimates, packages, items)

		estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(entities.Estimate{EstimateID: "est-1", RealmID: "realm-1"}, nil)
		packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{
			{ID: "pkg-1", Quantities: map[string]float64{"101": 3}},
			{ID: "pkg-2", Quantities: map[string]float64{"101": 2, "untracked": 1}},
		}, nil)
		items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", 3.0).Return(true, nil)
		items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", 2.0).Return(true, nil)
		items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "untracked", 1.0).Return(false, nil)
		packages.EXPECT().DeleteByEstimate(gomock.Any(), "realm-1", "est-1").Return(2, nil)
		estimates.EXPECT().Delete(gomock.Any(), "realm-1", "est-1").Return(true, nil)

		removed, err := uc.DeleteCascade(context.Background(), "realm-1", "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 2 {
			t.Fatalf("expected 2 removed, got %d", removed)
		}
	})
}
