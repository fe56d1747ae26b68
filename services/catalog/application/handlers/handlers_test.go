package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cotadorplus/cotador/pkg/auth"
	"github.com/cotadorplus/cotador/pkg/config"
	"github.com/cotadorplus/cotador/pkg/logger"
	"github.com/cotadorplus/cotador/services/catalog/application/api"
	"github.com/cotadorplus/cotador/services/catalog/application/handlers"
	appsvcs "github.com/cotadorplus/cotador/services/catalog/application/services"
	"github.com/cotadorplus/cotador/services/catalog/domain/models"
)

const tenant = "7f1d2c3b-4a5e-4f60-8a9b-0c1d2e3f4a5b"

type memoryCatalog struct {
	mu       sync.Mutex
	clients  []*models.Client
	products []*models.Product
}

func (m *memoryCatalog) SaveClient(_ context.Context, c *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients = append(m.clients, c)
	return nil
}

func (m *memoryCatalog) SearchClients(_ context.Context, tenantID uuid.UUID, q string, limit int) ([]*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Client
	for _, c := range m.clients {
		if c.TenantID == tenantID && strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) ClientExists(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (m *memoryCatalog) SaveProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, p)
	return nil
}

func (m *memoryCatalog) SearchProducts(_ context.Context, tenantID uuid.UUID, q string, limit int) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Product
	for _, p := range m.products {
		if p.TenantID == tenantID && strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryCatalog) ProductExists(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
	svcs := &appsvcs.Services{Catalog: appsvcs.NewCatalogService(&memoryCatalog{}, log)}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireTenant)
		api.Mount(r, svcs)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(auth.TenantHeader, tenant)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestClients(t *testing.T) {
	h := newRouter(t)

	for _, name := range []string{"João Silva", "Joana Dias", "Pedro"} {
		if w := do(t, h, http.MethodPost, "/api/clients", `{"name": "`+name+`"}`); w.Code != http.StatusCreated {
			t.Fatalf("create %s: %d %s", name, w.Code, w.Body)
		}
	}

	w := do(t, h, http.MethodGet, "/api/clients?q=jo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search: %d %s", w.Code, w.Body)
	}
	var resp handlers.SearchClientsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Clients) != 2 {
		t.Fatalf("expected 2 matches, got %+v", resp.Clients)
	}

	w = do(t, h, http.MethodGet, "/api/clients?q=zzz", "")
	if !strings.Contains(w.Body.String(), `"clients":[]`) {
		t.Fatalf("empty result must encode as an empty array: %s", w.Body)
	}
}

func TestCreateClient_Errors(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"missing name", `{}`, http.StatusUnprocessableEntity},
		{"blank name", `{"name": "  "}`, http.StatusUnprocessableEntity},
		{"bad email", `{"name": "A", "email": "nope"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, h, http.MethodPost, "/api/clients", tt.body); w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body)
			}
		})
	}
}

func TestProducts(t *testing.T) {
	h := newRouter(t)

	w := do(t, h, http.MethodPost, "/api/products", `{"title": "Tomada 20A", "price": "12.50", "category": "elétrica"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	var created handlers.ProductResponse
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Price != 12.5 || created.Title != "Tomada 20A" {
		t.Fatalf("unexpected product: %+v", created)
	}

	if w := do(t, h, http.MethodPost, "/api/products", `{"title": "X", "price": -1}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("negative price: expected 422, got %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/api/products?q=TOMADA", "")
	var resp handlers.SearchProductsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != created.ID {
		t.Fatalf("unexpected search result: %+v", resp.Products)
	}
}
