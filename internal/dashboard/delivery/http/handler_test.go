package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	dashboardhttp "github.com/tair/ims-admin/internal/dashboard/delivery/http"
	"github.com/tair/ims-admin/internal/dashboard/usecase/query"
	expensedomain "github.com/tair/ims-admin/internal/expense/domain"
	productdomain "github.com/tair/ims-admin/internal/product/domain"
	settingsdomain "github.com/tair/ims-admin/internal/settings/domain"
	userdomain "github.com/tair/ims-admin/internal/user/domain"
)

// Only the methods the bundle reads are implemented; the embedded
// interfaces are nil.
type users struct {
	userdomain.UserRepository
	rows []userdomain.User
}

func (u users) FindAll(context.Context, userdomain.UserFilter) ([]userdomain.User, error) {
	return u.rows, nil
}

type products struct{ productdomain.ProductRepository }

func (products) FindAll(context.Context, productdomain.ProductFilter) ([]productdomain.Product, error) {
	return []productdomain.Product{}, nil
}

type expenses struct{ expensedomain.ExpenseRepository }

func (expenses) FindAll(context.Context, expensedomain.ExpenseFilter) ([]expensedomain.Expense, error) {
	return []expensedomain.Expense{}, nil
}

type settings struct{ settingsdomain.SettingsRepository }

func (settings) First(context.Context) (*settingsdomain.Settings, error) { return nil, nil }

type overview struct{ err error }

func (o overview) TotalStock(context.Context) (int64, error) { return 3, o.err }
func (o overview) LowStockCount(context.Context) (int64, error) { return 1, nil }
func (o overview) DistinctSuppliers(context.Context) (int64, error) { return 1, nil }
func (o overview) ExpensesBetween(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.RequireFromString("12.5"), nil
}

func newRouter(stored []userdomain.User, overviewErr error) *mux.Router {
	h := dashboardhttp.NewDashboardHandler(
		query.NewGetOverviewHandler(overview{err: overviewErr}, nil, time.Now),
		query.NewGetBundleHandler(users{rows: stored}, products{}, expenses{}, settings{}),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(newRouter(nil, nil), http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Errorf("health = %d %s", rec.Code, rec.Body)
	}
}

func TestOverview(t *testing.T) {
	rec := serve(newRouter(nil, nil), http.MethodGet, "/api/dashboard/overview", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := `{"totalStock":3,"lowStockItems":1,"suppliers":1,"monthlyExpenses":12.5}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestOverview_StoreError(t *testing.T) {
	rec := serve(newRouter(nil, errors.New("db down")), http.MethodGet, "/api/dashboard/overview", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Failed to fetch overview"}` {
		t.Errorf("body = %s", got)
	}
}

func TestLogin(t *testing.T) {
	stored := []userdomain.User{
		{ID: 4, Name: "Admin User", Email: "admin@example.com"},
		{ID: 5, Name: "Manager Jane", Email: "jane.manager@example.com"},
	}
	router := newRouter(stored, nil)

	tests := []struct {
		name, body string
		wantID     float64
	}{
		{"matching email", `{"email":"jane.manager@example.com"}`, 5},
		{"no body", "", 4},
		{"malformed body", `{"email":`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/api/login", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}

			var resp struct {
				Status string                 `json:"status"`
				User   map[string]interface{} `json:"user"`
				Users  []interface{}          `json:"users"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "logged_in" || len(resp.Users) != 2 {
				t.Errorf("status/users = %s/%d", resp.Status, len(resp.Users))
			}
			if resp.User["id"] != tt.wantID {
				t.Errorf("user id = %v, want %v", resp.User["id"], tt.wantID)
			}
		})
	}
}

func TestData_EmptyStoreServesDemo(t *testing.T) {
	rec := serve(newRouter(nil, nil), http.MethodGet, "/api/data", "")

	var resp struct {
		Users         []userdomain.User        `json:"users"`
		Settings      *settingsdomain.Settings `json:"settings"`
		Relationships struct {
			ProductAssignments []map[string]uint `json:"productAssignments"`
		} `json:"relationships"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Users) != 2 || resp.Settings == nil || resp.Settings.CompanyName != "Demo Co" {
		t.Errorf("unexpected bundle: %+v", resp)
	}
	if len(resp.Relationships.ProductAssignments) != 2 {
		t.Errorf("assignments = %+v", resp.Relationships.ProductAssignments)
	}
}
