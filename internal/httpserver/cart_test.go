package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tireshop/internal/domain"
	cartsvc "tireshop/internal/service/cart"
	"tireshop/internal/validation"

	"github.com/gin-gonic/gin"
)

func cartRouter(svc CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v := validation.New()
	user := router.Group("/", requireUser())
	user.GET("/cart", getCartHandler(svc))
	user.POST("/cart/items", addCartItemHandler(svc, v))
	user.DELETE("/cart/items/:itemID", deleteCartItemHandler(svc))
	user.DELETE("/cart", clearCartHandler(svc))
	return router
}

func userRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", "u1")
	return req
}

func TestGetCartSummary(t *testing.T) {
	svc := &stubCartService{summary: &cartsvc.Summary{
		Items:      []domain.CartItem{{ID: "i1", Name: "Nordman 7", PriceCents: 640000, Quantity: 4}},
		TotalCount: 4,
		TotalCents: 2560000,
	}}
	router := cartRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodGet, "/cart", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"totalCents":2560000`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestAddCartItem(t *testing.T) {
	svc := &stubCartService{item: &domain.CartItem{ID: "i1", ProductID: "p1", Quantity: 2}}
	router := cartRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodPost, "/cart/items", `{"productId": "p1", "quantity": 2}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItemValidation(t *testing.T) {
	cases := []string{
		`{"quantity": 2}`,
		`{"productId": "p1"}`,
		`{"productId": "p1", "quantity": 0}`,
	}
	for _, body := range cases {
		svc := &stubCartService{}
		router := cartRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, userRequest(http.MethodPost, "/cart/items", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	svc := &stubCartService{err: domain.ErrNotFound}
	router := cartRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodPost, "/cart/items", `{"productId": "missing", "quantity": 1}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteCartItem(t *testing.T) {
	router := cartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodDelete, "/cart/items/i1", ""))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestClearCart(t *testing.T) {
	router := cartRouter(&stubCartService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, userRequest(http.MethodDelete, "/cart", ""))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
