package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCatalogTestRouter(t *testing.T) (*gin.Engine, *InMemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewInMemoryRepository()
	handler := NewHandler(NewService(repo, nil))

	r := gin.New()
	r.GET("/products", handler.List)
	r.GET("/products/:id", handler.Get)
	return r, repo
}

func TestListProductsEndpoint(t *testing.T) {
	r, repo := setupCatalogTestRouter(t)

	_ = repo.Create(context.Background(), &Product{
		ID: "p1", Name: "Coke", Price: 2.50, Category: "Drinks",
	})
	_ = repo.Create(context.Background(), &Product{
		ID: "p2", Name: "Garlic Bread", Price: 4.00, Category: "Starters",
	})

	req := httptest.NewRequest("GET", "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Products []Product `json:"products"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if len(resp.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp.Products))
	}
}

func TestGetProductEndpoint(t *testing.T) {
	r, repo := setupCatalogTestRouter(t)

	_ = repo.Create(context.Background(), &Product{
		ID: "p1", Name: "Coke", Price: 2.50, Category: "Drinks",
	})

	t.Run("existing product", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var p Product
		_ = json.Unmarshal(w.Body.Bytes(), &p)
		if p.Name != "Coke" {
			t.Errorf("unexpected product: %+v", p)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
