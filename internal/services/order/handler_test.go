package order

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gunturaf/sukab-restaurant/internal/logger"
	"github.com/gunturaf/sukab-restaurant/internal/models"
)

func newTestServer(t *testing.T, store *fakeStore) *echo.Echo {
	t.Helper()

	svc := newTestService(t, store, nil)
	h := NewHandler(svc, logger.New("order-service-test", "error"))

	e := echo.New()
	h.Register(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWelcome(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "Welcome to Sukab Restaurant" {
		t.Errorf("GET / body = %q", got)
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodPost, "/table/3/order", `{"menu_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var order models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("response is not an Order: %v", err)
	}
	if order.TableNumber != 3 {
		t.Errorf("table_number = %d, want 3", order.TableNumber)
	}
	if order.MenuID != 1 {
		t.Errorf("menu_id = %d, want 1", order.MenuID)
	}
	if order.CookTime < 5 || order.CookTime > 15 {
		t.Errorf("cook_time = %d, want within [5, 15]", order.CookTime)
	}
	if order.OrderID == 0 {
		t.Error("order_id not assigned")
	}
	if order.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestCreateOrderEndpointFailures(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{name: "non-integer table", target: "/table/abc/order", body: `{"menu_id":1}`, wantStatus: http.StatusBadRequest},
		{name: "zero table", target: "/table/0/order", body: `{"menu_id":1}`, wantStatus: http.StatusBadRequest},
		{name: "table above maximum", target: "/table/101/order", body: `{"menu_id":1}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", target: "/table/3/order", body: `{"menu_id":`, wantStatus: http.StatusBadRequest},
		{name: "missing menu_id", target: "/table/3/order", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "negative menu_id", target: "/table/3/order", body: `{"menu_id":-2}`, wantStatus: http.StatusBadRequest},
		{name: "unknown menu", target: "/table/3/order", body: `{"menu_id":999}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			e := newTestServer(t, store)

			rec := doRequest(e, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var errResp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("error response is not valid JSON: %v", err)
			}
			if !errResp.Error || errResp.Message == "" {
				t.Errorf("error response = %+v, want error=true with a message", errResp)
			}
			if store.createCalls != 0 {
				t.Errorf("createCalls = %d, want 0", store.createCalls)
			}
		})
	}
}

func TestListOrdersEndpointEmptyTable(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodGet, "/table/99/order", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}

func TestListOrdersEndpointInvalidTable(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodGet, "/table/zero/order", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodGet, "/table/3/order/42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetOrderEndpointInvalidOrderID(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodGet, "/table/3/order/forty-two", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestOrderLifecycle walks the full scenario: place an order, see it
// in the table's list, fetch it, cancel it, and observe it gone.
func TestOrderLifecycle(t *testing.T) {
	e := newTestServer(t, newFakeStore())

	rec := doRequest(e, http.MethodPost, "/table/3/order", `{"menu_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	var created models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("create response: %v", err)
	}

	rec = doRequest(e, http.MethodGet, "/table/3/order", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var listed []models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("list response: %v", err)
	}
	if len(listed) != 1 || listed[0].OrderID != created.OrderID {
		t.Fatalf("list = %+v, want exactly the created order", listed)
	}

	orderPath := fmt.Sprintf("/table/3/order/%d", created.OrderID)

	rec = doRequest(e, http.MethodGet, orderPath, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var fetched models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("get response: %v", err)
	}
	if fetched.OrderID != created.OrderID || fetched.CookTime != created.CookTime {
		t.Errorf("fetched = %+v, want same order as created %+v", fetched, created)
	}

	// A different table must not see or delete this order.
	otherPath := fmt.Sprintf("/table/4/order/%d", created.OrderID)
	if rec = doRequest(e, http.MethodGet, otherPath, ""); rec.Code != http.StatusNotFound {
		t.Errorf("cross-table get status = %d, want 404", rec.Code)
	}
	if rec = doRequest(e, http.MethodDelete, otherPath, ""); rec.Code != http.StatusNotFound {
		t.Errorf("cross-table delete status = %d, want 404", rec.Code)
	}

	rec = doRequest(e, http.MethodDelete, orderPath, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	if body := rec.Body.String(); body != "" {
		t.Errorf("delete body = %q, want empty", body)
	}

	if rec = doRequest(e, http.MethodGet, orderPath, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
	if rec = doRequest(e, http.MethodDelete, orderPath, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHealthCheckEndpoint(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(t, store)

	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	store.pingErr = fmt.Errorf("connection refused")
	rec = doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when database unreachable", rec.Code)
	}
}
