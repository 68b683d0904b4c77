package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/tair/ims-admin/internal/apperr"
	expensehttp "github.com/tair/ims-admin/internal/expense/delivery/http"
	"github.com/tair/ims-admin/internal/expense/domain"
	"github.com/tair/ims-admin/internal/expense/usecase/command"
	"github.com/tair/ims-admin/internal/expense/usecase/query"
	"github.com/tair/ims-admin/kafka"
)

type memRepo struct {
	rows []domain.Expense
}

func (m *memRepo) Create(_ context.Context, e *domain.Expense) error {
	e.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id uint) (*domain.Expense, error) {
	for _, e := range m.rows {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperr.NotFound("expense", id)
}

func (m *memRepo) FindAll(_ context.Context, f domain.ExpenseFilter) ([]domain.Expense, error) {
	out := []domain.Expense{}
	for _, e := range m.rows {
		if f.Category == "" || e.Category == f.Category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, e *domain.Expense) error {
	for i := range m.rows {
		if m.rows[i].ID == e.ID {
			m.rows[i] = *e
		}
	}
	return nil
}

func (m *memRepo) Delete(context.Context, uint) error { return nil }

func newTestRouter(repo domain.ExpenseRepository) *mux.Router {
	pub := kafka.NoopPublisher{}
	h := expensehttp.NewExpenseHandler(
		command.NewCreateExpenseHandler(repo, pub),
		command.NewUpdateExpenseHandler(repo, pub),
		command.NewDeleteExpenseHandler(repo, pub),
		query.NewListExpensesHandler(repo),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreateExpense(t *testing.T) {
	router := newTestRouter(&memRepo{})

	rec := serve(router, http.MethodPost, "/api/expenses",
		`{"date":"2025-09-05","category":"Supplies","amount":480,"description":"Packaging materials"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var got map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&got)
	if got["date"] != "2025-09-05" {
		t.Errorf("date = %v, want 2025-09-05", got["date"])
	}
	if got["amount"] != float64(480) {
		t.Errorf("amount = %v, want 480", got["amount"])
	}
}

func TestCreateExpense_Failures(t *testing.T) {
	router := newTestRouter(&memRepo{})

	for _, body := range []string{
		`{"category":"Rent","amount":10}`,
		`{"date":"2025-09-01","amount":10}`,
		`{"date":"2025-09-01","category":"Rent"}`,
		`{"date":"not-a-date","category":"Rent","amount":10}`,
	} {
		rec := serve(router, http.MethodPost, "/api/expenses", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
			continue
		}
		var resp map[string]string
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp["error"] != "Failed to create expense" {
			t.Errorf("%s: error = %q", body, resp["error"])
		}
	}
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	repo := &memRepo{}
	router := newTestRouter(repo)
	serve(router, http.MethodPost, "/api/expenses", `{"date":"2025-09-01","category":"Rent","amount":1200}`)

	rec := serve(router, http.MethodPut, "/api/expenses/1", `{"description":"Office rent"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body)
	}
	if d := repo.rows[0].Description; d == nil || *d != "Office rent" {
		t.Errorf("description = %v", d)
	}
	if repo.rows[0].Category != "Rent" {
		t.Errorf("category = %q, want Rent", repo.rows[0].Category)
	}

	rec = serve(router, http.MethodPut, "/api/expenses/5", `{"category":"X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing id status = %d, want 400", rec.Code)
	}

	rec = serve(router, http.MethodDelete, "/api/expenses/1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
}
