package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printshop/internal/config"
	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/server/http/dto"
	"github.com/polkiloo/printshop/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/printshop/internal/test"
)

func newEngine(facade *testhelpers.AdminFacadeStub) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, &config.Config{RequestTimeout: time.Second}, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := &testhelpers.AdminFacadeStub{
		CallerResolverStub: testhelpers.CallerResolverStub{Caller: model.Caller{ID: 1, Role: model.RoleAdmin}},
	}
	engine := newEngine(facade)

	body, _ := json.Marshal(dto.AdvanceStatusRequest{OrderID: 1, Action: "next"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for status change, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/orders/1/status", bytes.NewReader([]byte(`{"action":"next"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for path status change, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders/1", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

func TestAnonymousCallerIsRejected(t *testing.T) {
	engine := newEngine(&testhelpers.AdminFacadeStub{})

	body, _ := json.Marshal(dto.AdvanceStatusRequest{OrderID: 1, Action: "next"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestGzipRequestBody(t *testing.T) {
	var gotAction string
	facade := &testhelpers.AdminFacadeStub{
		CallerResolverStub: testhelpers.CallerResolverStub{Caller: model.Caller{ID: 1, Role: model.RoleAdmin}},
		AdvanceFn: func(_ context.Context, orderID int64, action string, _ model.Caller) (*model.Transition, error) {
			gotAction = action
			order := &model.Order{ID: orderID, Number: "PS-1", Status: model.OrderStatusCancelled}
			return &model.Transition{Order: order, From: model.OrderStatusPending, To: model.OrderStatusCancelled}, nil
		},
	}
	engine := newEngine(facade)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"order_id":1,"action":"cancel"}`))
	_ = gz.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/status", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for gzip body, got %d", resp.Code)
	}
	if gotAction != "cancel" {
		t.Fatalf("expected decompressed action, got %q", gotAction)
	}
}

var _ handlers.AdminFacade = (*testhelpers.AdminFacadeStub)(nil)
