package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/tair/ims-admin/internal/apperr"
	producthttp "github.com/tair/ims-admin/internal/product/delivery/http"
	"github.com/tair/ims-admin/internal/product/domain"
	"github.com/tair/ims-admin/internal/product/usecase/command"
	"github.com/tair/ims-admin/internal/product/usecase/query"
	"github.com/tair/ims-admin/kafka"
)

// memRepo keeps products in insertion order and lists them newest first
type memRepo struct {
	rows    []domain.Product
	nextID  uint
	listErr error
}

func (m *memRepo) Create(_ context.Context, p *domain.Product) error {
	for _, r := range m.rows {
		if r.SKU == p.SKU {
			return apperr.Validation("duplicate sku")
		}
	}
	m.nextID++
	p.ID = m.nextID
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, apperr.NotFound("product", id)
}

func (m *memRepo) FindAll(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domain.Product{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		r := m.rows[i]
		if f.Search != "" &&
			!strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Search)) &&
			!strings.Contains(strings.ToLower(r.SKU), strings.ToLower(f.Search)) {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if f.Supplier != "" && r.Supplier != f.Supplier {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, p *domain.Product) error {
	for i := range m.rows {
		if m.rows[i].ID == p.ID {
			m.rows[i] = *p
			return nil
		}
	}
	return apperr.NotFound("product", p.ID)
}

func (m *memRepo) Delete(_ context.Context, id uint) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter(repo domain.ProductRepository) *mux.Router {
	pub := kafka.NoopPublisher{}
	h := producthttp.NewProductHandler(
		command.NewCreateProductHandler(repo, pub),
		command.NewUpdateProductHandler(repo, pub),
		command.NewDeleteProductHandler(repo, pub),
		query.NewListProductsHandler(repo),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestCreateProduct(t *testing.T) {
	router := newTestRouter(&memRepo{})

	rec := do(t, router, http.MethodPost, "/api/products",
		`{"name":"Laptop","sku":"LAP-001","quantity":10,"purchase_price":800,"sale_price":1199.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body)
	}

	var got map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["sku"] != "LAP-001" || got["status"] != "active" {
		t.Errorf("unexpected body %v", got)
	}
	if got["sale_price"] != 1199.5 {
		t.Errorf("sale_price = %v, want JSON number 1199.5", got["sale_price"])
	}
	if got["low_stock_threshold"] != float64(10) {
		t.Errorf("low_stock_threshold = %v, want 10", got["low_stock_threshold"])
	}
}

func TestCreateProduct_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"sku":"X-1"}`},
		{"missing sku", `{"name":"X"}`},
		{"negative quantity", `{"name":"X","sku":"X-1","quantity":-1}`},
		{"malformed json", `{"name":`},
		{"duplicate sku", `{"name":"Other","sku":"DUP-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			repo.Create(context.Background(), &domain.Product{Name: "Seed", SKU: "DUP-1"})
			router := newTestRouter(repo)

			rec := do(t, router, http.MethodPost, "/api/products", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if msg := decodeError(t, rec); msg != "Failed to create product" {
				t.Errorf("error = %q", msg)
			}
		})
	}
}

func TestListProducts_StatusFilter(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()
	repo.Create(ctx, &domain.Product{Name: "Active", SKU: "A-1", Status: "active"})
	repo.Create(ctx, &domain.Product{Name: "Retired", SKU: "R-1", Status: "inactive"})
	router := newTestRouter(repo)

	rec := do(t, router, http.MethodGet, "/api/products?status=inactive", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []domain.Product
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].SKU != "R-1" {
		t.Errorf("got %+v, want only R-1", got)
	}
}

func TestListProducts_SearchAndEmpty(t *testing.T) {
	repo := &memRepo{}
	router := newTestRouter(repo)

	rec := do(t, router, http.MethodGet, "/api/products", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty list body = %s, want []", rec.Body)
	}

	ctx := context.Background()
	repo.Create(ctx, &domain.Product{Name: "Wireless Mouse", SKU: "WM-001"})
	repo.Create(ctx, &domain.Product{Name: "Keyboard", SKU: "MK-002"})

	rec = do(t, router, http.MethodGet, "/api/products?search=mouse", "")
	var got []domain.Product
	json.NewDecoder(rec.Body).Decode(&got)
	if len(got) != 1 || got[0].SKU != "WM-001" {
		t.Errorf("search result %+v", got)
	}
}

func TestListProducts_StoreError(t *testing.T) {
	router := newTestRouter(&memRepo{listErr: errors.New("connection refused")})

	rec := do(t, router, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Failed to fetch products" {
		t.Errorf("error = %q", msg)
	}
}

func TestUpdateProduct(t *testing.T) {
	repo := &memRepo{}
	repo.Create(context.Background(), &domain.Product{Name: "Laptop", SKU: "LAP-001", Quantity: 10, Category: "Computers"})
	router := newTestRouter(repo)

	rec := do(t, router, http.MethodPut, "/api/products/1", `{"quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var got domain.Product
	json.NewDecoder(rec.Body).Decode(&got)
	if got.Quantity != 0 || got.Category != "Computers" || got.Name != "Laptop" {
		t.Errorf("got %+v", got)
	}

	rec = do(t, router, http.MethodPut, "/api/products/42", `{"quantity":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing id status = %d, want 400", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Failed to update product" {
		t.Errorf("error = %q", msg)
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := &memRepo{}
	repo.Create(context.Background(), &domain.Product{Name: "Laptop", SKU: "LAP-001"})
	router := newTestRouter(repo)

	for _, path := range []string{"/api/products/1", "/api/products/1", "/api/products/999"} {
		rec := do(t, router, http.MethodDelete, path, "")
		if rec.Code != http.StatusNoContent {
			t.Errorf("DELETE %s status = %d, want 204", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("DELETE %s body = %q, want empty", path, rec.Body)
		}
	}

	rec := do(t, router, http.MethodDelete, "/api/products/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", rec.Code)
	}
}
