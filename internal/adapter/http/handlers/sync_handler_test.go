package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nurseryhub/internal/adapter/http/handlers/mocks"
	"nurseryhub/internal/usecase"
	"nurseryhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSyncHandler_SyncEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(sync, nil)

		r := gin.New()
		r.POST("/v1/admin/sync/estimates", h.SyncEstimates)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/sync/estimates?realmId=realm-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(sync, nil)

		r := gin.New()
		r.POST("/v1/admin/sync/estimates", h.SyncEstimates)

		sync.EXPECT().SyncEstimates(gomock.Any(), interfaces.QBOAuth{AccessToken: "token", RealmID: "realm-1"}).Return(12, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/sync/estimates?realmId=realm-1", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["synced"] != float64(12) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSyncHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing to invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewSyncHandler(nil, invoices)

		r := gin.New()
		r.POST("/v1/packages/:id/invoice", h.CreateInvoice)

		invoices.EXPECT().CreateFromPackage(gomock.Any(), gomock.Any(), "pkg-1").Return(interfaces.QBOInvoice{}, usecase.ErrNothingToInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/packages/pkg-1/invoice?realmId=realm-1", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewSyncHandler(nil, invoices)

		r := gin.New()
		r.POST("/v1/packages/:id/invoice", h.CreateInvoice)

		invoices.EXPECT().CreateFromPackage(gomock.Any(), gomock.Any(), "pkg-1").Return(interfaces.QBOInvoice{ID: "inv-1", TotalAmt: 100}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/packages/pkg-1/invoice?realmId=realm-1", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQBOAuthFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(authHeader, query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/ping"+query, nil)
		if authHeader != "" {
			c.Request.Header.Set("Authorization", authHeader)
		}
		return c
	}

	if _, ok := qboAuthFromRequest(newCtx("", "?realmId=realm-1")); ok {
		t.Fatalf("expected failure without token")
	}
	if _, ok := qboAuthFromRequest(newCtx("Bearer token", "")); ok {
		t.Fatalf("expected failure without realm id")
	}
	auth, ok := qboAuthFromRequest(newCtx("Bearer token", "?realmId=realm-1"))
	if !ok || auth.AccessToken != "token" || auth.RealmID != "realm-1" {
		t.Fatalf("unexpected auth: %+v %v", auth, ok)
	}
}

func TestMapSyncError(t *testing.T) {
	if got := mapSyncError(usecase.ErrMissingAccessToken); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapSyncError(usecase.ErrInvalidRealmID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSyncError(usecase.ErrNothingToInvoice); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapSyncError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSyncError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
