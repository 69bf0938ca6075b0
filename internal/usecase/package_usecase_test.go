package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"nurseryhub/internal/domain/entities"
	"nurseryhub/internal/usecase/interfaces"
	mock_interfaces "nurseryhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type packageUseCaseMocks struct {
	estimates *mock_interfaces.MockIEstimateRepository
	packages  *mock_interfaces.MockIPackageRepository
	items     *mock_interfaces.MockIItemRepository
	counters  *mock_interfaces.MockICounterRepository
	tx        *mock_interfaces.MockIReconciliationTx
}

func newPackageUseCase(ctrl *gomock.Controller) (*PackageUseCase, packageUseCaseMocks) {
	m := packageUseCaseMocks{
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		packages:  mock_interfaces.NewMockIPackageRepository(ctrl),
		items:     mock_interfaces.NewMockIItemRepository(ctrl),
		counters:  mock_interfaces.NewMockICounterRepository(ctrl),
		tx:        mock_interfaces.NewMockIReconciliationTx(ctrl),
	}
	recompute := NewRecomputeEngine(m.estimates, m.packages)
	uc := NewPackageUseCase(m.estimates, m.packages, m.items, m.counters, m.tx, recompute)
	return uc, m
}

func packableEstimate() entities.Estimate {
	return entities.Estimate{
		RealmID:      "realm-1",
		EstimateID:   "est-1",
		CustomerName: "Green Acres Landscaping",
		TxnDate:      "2026-03-02",
		TotalAmount:  500,
		TxnStatus:    entities.TxnStatusAccepted,
		Items: []entities.EstimateLine{
			{ItemID: "101", Name: "Red Maple 5gal", Quantity: 10, Fulfilled: 4, Rate: 25},
			{ItemID: "102", Name: "Boxwood 1gal", Quantity: 5, Fulfilled: 5, Rate: 10},
			{Name: "Legacy Fern", Quantity: 3, Rate: 8},
		},
	}
}

func TestPackageUseCase_Create(t *testing.T) {
	t.Run("invalid realm id", func(t *testing.T) {
		uc, _ := newPackageUseCase(gomock.NewController(t))
		_, err := uc.Create(context.Background(), CreatePackageInput{EstimateID: "est-1"})
		if !errors.Is(err, ErrInvalidRealmID) {
			t.Fatalf("expected ErrInvalidRealmID, got %v", err)
		}
	})

	t.Run("invalid estimate id", func(t *testing.T) {
		uc, _ := newPackageUseCase(gomock.NewController(t))
		_, err := uc.Create(context.Background(), CreatePackageInput{RealmID: "realm-1"})
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.Create(context.Background(), CreatePackageInput{RealmID: "realm-1", EstimateID: "est-1"})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("nothing to package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		// No increments, no inventory, no counter, no package write.

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"999": 5, "102": 2},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Fatalf("expected success=false")
		}
		if res.Message != "No valid quantities to package" {
			t.Fatalf("unexpected message: %q", res.Message)
		}
		if len(res.Warnings) != 2 {
			t.Fatalf("expected 2 warnings, got %v", res.Warnings)
		}
	})

	t.Run("clamps to remaining with warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), "realm-1", "est-1", 0, entities.ItemKey{ID: "101"}, 6.0).Return(true, nil)
		m.items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", -6.0).Return(true, nil)
		m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(7), nil)
		m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if p.Quantities["101"] != 6 {
					t.Fatalf("expected clamped quantity stored, got %v", p.Quantities)
				}
				if p.Totals.Lines != 6 || p.Totals.Amount != 150 {
					t.Fatalf("unexpected totals: %+v", p.Totals)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"101": 9},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
		if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "only 6 remaining") {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
		expectedCode := fmt.Sprintf("PKG-%d-0007", time.Now().UTC().Year())
		if res.PackageCode != expectedCode {
			t.Fatalf("expected code %s, got %s", expectedCode, res.PackageCode)
		}
	})

	t.Run("exhausted and unknown lines are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), "realm-1", "est-1", 0, entities.ItemKey{ID: "101"}, 2.0).Return(true, nil)
		m.items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", -2.0).Return(true, nil)
		m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(1), nil)
		m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) { return p, nil },
		)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"101": 2, "102": 1, "999": 4},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success")
		}
		if len(res.Warnings) != 2 {
			t.Fatalf("expected 2 warnings, got %v", res.Warnings)
		}
		if !strings.Contains(res.Warnings[0], "already fully fulfilled") {
			t.Fatalf("expected fulfilled warning first, got %v", res.Warnings)
		}
		if !strings.Contains(res.Warnings[1], "not found on estimate") {
			t.Fatalf("expected unknown-item warning, got %v", res.Warnings)
		}
	})

	t.Run("name key packs without inventory touch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), "realm-1", "est-1", 2, entities.ItemKey{Name: "Legacy Fern"}, 3.0).Return(true, nil)
		// No AdjustQuantity for name-only keys.
		m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(2), nil)
		m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if p.Quantities["Legacy Fern"] != 3 {
					t.Fatalf("expected name-keyed quantity, got %v", p.Quantities)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"legacy fern": 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || len(res.Warnings) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mismatched line triggers recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), "realm-1", "est-1", 0, entities.ItemKey{ID: "101"}, 1.0).Return(false, nil)
		m.items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", -1.0).Return(true, nil)
		m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(3), nil)
		m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) { return p, nil },
		)
		// Post-create repair pass.
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return(nil, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().ApplyLineChanges(gomock.Any(), "realm-1", "est-1", gomock.Any(), gomock.Nil()).Return(nil)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"101": 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success")
		}
	})

	t.Run("untracked inventory is skipped without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), "realm-1", "est-1", 0, entities.ItemKey{ID: "101"}, 1.0).Return(true, nil)
		m.items.EXPECT().AdjustQuantity(gomock.Any(), "realm-1", "101", -1.0).Return(false, nil)
		m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(4), nil)
		m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) { return p, nil },
		)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"101": 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Fatalf("expected success despite untracked item")
		}
	})

	t.Run("code collision retries once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().IncrementLineFulfilled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.items.EXPECT().AdjustQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		gomock.InOrder(
			m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(8), nil),
			m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(true, nil),
			m.counters.EXPECT().Next(gomock.Any(), "realm-1", "package", gomock.Any()).Return(int64(9), nil),
			m.packages.EXPECT().CodeExists(gomock.Any(), "realm-1", gomock.Any()).Return(false, nil),
		)
		m.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) { return p, nil },
		)

		res, err := uc.Create(context.Background(), CreatePackageInput{
			RealmID:    "realm-1",
			EstimateID: "est-1",
			Quantities: map[string]float64{"101": 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(res.PackageCode, "-0009") {
			t.Fatalf("expected second sequence value, got %s", res.PackageCode)
		}
	})
}

func TestPackageUseCase_Update(t *testing.T) {
	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{}, nil)

		_, err := uc.Update(context.Background(), "pkg-1", UpdatePackageInput{RealmID: "realm-1"})
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("wrong tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", RealmID: "other"}, nil)

		_, err := uc.Update(context.Background(), "pkg-1", UpdatePackageInput{RealmID: "realm-1"})
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("metadata only skips recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		driver := "Sam"
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1"}, nil)
		m.packages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if p.DriverName != "Sam" {
					t.Fatalf("expected driver updated, got %q", p.DriverName)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), "pkg-1", UpdatePackageInput{RealmID: "realm-1", DriverName: &driver}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quantities replacement regenerates lines and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"101": 2},
		}, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.packages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if p.Quantities["101"] != 4 {
					t.Fatalf("expected replaced quantities, got %v", p.Quantities)
				}
				if len(p.Lines) != 1 || p.Lines[0].Rate != 25 || p.Lines[0].Amount != 100 {
					t.Fatalf("expected regenerated lines, got %+v", p.Lines)
				}
				return p, nil
			},
		)
		// Recompute pass after the write.
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return(nil, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.estimates.EXPECT().ApplyLineChanges(gomock.Any(), "realm-1", "est-1", gomock.Any(), gomock.Nil()).Return(nil)

		_, err := uc.Update(context.Background(), "pkg-1", UpdatePackageInput{
			RealmID:    "realm-1",
			Quantities: map[string]any{"101": 4},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name keys are stored canonical and survive recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		estimate := entities.Estimate{
			EstimateID: "est-1", RealmID: "realm-1", TxnStatus: entities.TxnStatusAccepted,
			Items: []entities.EstimateLine{
				{ItemID: "101", Name: "Red Maple 5gal", Quantity: 10, Fulfilled: 4, Rate: 25},
			},
		}

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"101": 2},
		}, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(estimate, nil)
		m.packages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Package) (entities.Package, error) {
				if len(p.Quantities) != 1 || p.Quantities["101"] != 4 {
					t.Fatalf("expected canonical-keyed quantities, got %v", p.Quantities)
				}
				if len(p.Lines) != 1 || p.Lines[0].ItemID != "101" || p.Lines[0].Amount != 100 {
					t.Fatalf("unexpected lines: %+v", p.Lines)
				}
				return p, nil
			},
		)
		// The recompute pass must see the packed 4 on line 101 and stage
		// nothing; an unmatched key would collapse fulfilled to 0 here.
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{
			{ID: "pkg-1", Quantities: map[string]float64{"101": 4}},
		}, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(estimate, nil)

		_, err := uc.Update(context.Background(), "pkg-1", UpdatePackageInput{
			RealmID:    "realm-1",
			Quantities: map[string]any{"red maple 5gal": 4, "ghost": 2},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPackageUseCase_Delete(t *testing.T) {
	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{}, nil)

		_, err := uc.Delete(context.Background(), "pkg-1", "realm-1")
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("commits delete with staged changes and reversals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		doomed := entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"101": 4},
		}
		estimate := packableEstimate()

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(doomed, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(estimate, nil)
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{
			doomed,
			{ID: "pkg-2", Quantities: map[string]float64{"102": 5}},
		}, nil)
		m.items.EXPECT().Get(gomock.Any(), "realm-1", "101").Return(entities.Item{ItemID: "101", RealmID: "realm-1"}, nil)
		m.tx.EXPECT().DeletePackageAndReconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.DeleteReconcileInput) (bool, error) {
				if in.Package.ID != "pkg-1" {
					t.Fatalf("unexpected package: %+v", in.Package)
				}
				// 101 drops from 4 to 0; 102 stays at 5; the name-only line
				// stays at 0 but gets its key written back.
				if len(in.LineChanges) != 2 {
					t.Fatalf("unexpected line changes: %+v", in.LineChanges)
				}
				if in.LineChanges[0].Index != 0 || in.LineChanges[0].Fulfilled != 0 || in.LineChanges[0].PrevFulfilled != 4 {
					t.Fatalf("unexpected first change: %+v", in.LineChanges[0])
				}
				if !in.LineChanges[1].HealID || in.LineChanges[1].Key.Name != "Legacy Fern" {
					t.Fatalf("unexpected heal change: %+v", in.LineChanges[1])
				}
				if len(in.Reversals) != 1 || in.Reversals[0].ItemID != "101" || in.Reversals[0].Delta != 4 {
					t.Fatalf("unexpected reversals: %+v", in.Reversals)
				}
				if in.Status != nil {
					t.Fatalf("expected no status advance, got %v", *in.Status)
				}
				return true, nil
			},
		)

		result, err := uc.Delete(context.Background(), "pkg-1", "realm-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Items[0].Fulfilled != 0 {
			t.Fatalf("expected reconciled estimate, got %+v", result.Items)
		}
	})

	t.Run("untracked reversal key is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		doomed := entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"Legacy Fern": 2},
		}
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(doomed, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{doomed}, nil)
		m.items.EXPECT().Get(gomock.Any(), "realm-1", "Legacy Fern").Return(entities.Item{}, nil)
		m.tx.EXPECT().DeletePackageAndReconcile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.DeleteReconcileInput) (bool, error) {
				if len(in.Reversals) != 0 {
					t.Fatalf("expected no reversals, got %+v", in.Reversals)
				}
				return true, nil
			},
		)

		if _, err := uc.Delete(context.Background(), "pkg-1", "realm-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict exhausts retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		doomed := entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"101": 1},
		}
		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(doomed, nil).Times(3)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil).Times(3)
		m.packages.EXPECT().ListByEstimate(gomock.Any(), "realm-1", "est-1").Return([]entities.Package{doomed}, nil).Times(3)
		m.items.EXPECT().Get(gomock.Any(), "realm-1", "101").Return(entities.Item{ItemID: "101"}, nil).Times(3)
		m.tx.EXPECT().DeletePackageAndReconcile(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)

		_, err := uc.Delete(context.Background(), "pkg-1", "realm-1")
		if !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})
}

func TestPackageUseCase_GetByID(t *testing.T) {
	t.Run("merges estimate lines with orphaned keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPackageUseCase(ctrl)

		m.packages.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{
			ID: "pkg-1", RealmID: "realm-1", EstimateID: "est-1",
			Quantities: map[string]float64{"101": 2, "gone-item": 1},
		}, nil)
		m.estimates.EXPECT().Get(gomock.Any(), "realm-1", "est-1").Return(packableEstimate(), nil)

		view, err := uc.GetByID(context.Background(), "pkg-1", "realm-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Rows) != 4 {
			t.Fatalf("expected 3 estimate rows + 1 orphan, got %d", len(view.Rows))
		}
		last := view.Rows[len(view.Rows)-1]
		if last.ItemID != "gone-item" || last.Packed != 1 || last.Ordered != 0 {
			t.Fatalf("unexpected orphan row: %+v", last)
		}
	})
}

func TestCleanQuantities(t *testing.T) {
	cleaned := CleanQuantities(map[string]any{
		"101":       3,
		"102":       "2.5",
		" 103 ":     float64(1),
		"":          4,
		"undefined": 9,
		"104":       "not-a-number",
		"105":       -2,
	})
	if len(cleaned) != 3 {
		t.Fatalf("expected 3 surviving entries, got %v", cleaned)
	}
	if cleaned["101"] != 3 || cleaned["102"] != 2.5 || cleaned["103"] != 1 {
		t.Fatalf("unexpected values: %v", cleaned)
	}
}
