package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/models"
	"github.com/Arnav-0606/Nsut-cater/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	t.Setenv("STAFF_API_KEY", "")
	gin.SetMode(gin.TestMode)

	s := store.New()
	s.AddMenuItem(models.MenuItem{
		ID: "1", Name: "Aloo Paratha", Price: 40,
		Category: models.CategoryBreakfast, IsVeg: true, IsAvailable: true,
	})
	s.AddMenuItem(models.MenuItem{
		ID: "2", Name: "Chai", Price: 10,
		Category: models.CategoryBeverages, IsVeg: true, IsAvailable: true,
	})
	s.SetUser(models.User{
		ID: "user1", Name: "Arjun Kumar", Role: models.RoleUser, WalletBalance: 450,
	})

	r := gin.New()
	SetupRoutes(r, s, 0)
	return r, s
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestPlaceOrderFlow(t *testing.T) {
	r, s := newTestRouter(t)

	// Empty cart is rejected and nothing is created
	w := do(t, r, http.MethodPost, "/orders/place", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart placement: status = %d, want 400", w.Code)
	}

	// Fill the cart: 2 x paratha + 1 x chai = 90
	for i := 0; i < 2; i++ {
		if w := do(t, r, http.MethodPost, "/user/cart/", gin.H{"item_id": "1"}); w.Code != http.StatusCreated {
			t.Fatalf("add to cart: status = %d, body = %s", w.Code, w.Body.String())
		}
	}
	if w := do(t, r, http.MethodPost, "/user/cart/", gin.H{"item_id": "2"}); w.Code != http.StatusCreated {
		t.Fatalf("add to cart: status = %d", w.Code)
	}

	cartResp := decode(t, do(t, r, http.MethodGet, "/user/cart/", nil))
	if total := cartResp["total"].(float64); total != 90 {
		t.Fatalf("cart total = %v, want 90", total)
	}

	// Place the order
	w = do(t, r, http.MethodPost, "/orders/place", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("placement: status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	orderID := resp["order_id"].(string)
	if amount := resp["total_amount"].(float64); amount != 90 {
		t.Fatalf("total_amount = %v, want 90", amount)
	}
	if token := resp["token_number"].(float64); token < 100 || token > 999 {
		t.Fatalf("token_number = %v, out of range", token)
	}
	if items := s.Cart("user1").Items; len(items) != 0 {
		t.Fatalf("cart not cleared: %v", items)
	}

	// Order shows up in the user's history
	if w := do(t, r, http.MethodGet, "/orders/user/user1", nil); w.Code != http.StatusOK {
		t.Fatalf("history: status = %d", w.Code)
	}

	// QR placeholder renders
	w = do(t, r, http.MethodGet, "/orders/"+orderID+"/qr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("qr: status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("qr content type = %q", ct)
	}
}

func TestKitchenPipelineOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	do(t, r, http.MethodPost, "/user/cart/", gin.H{"item_id": "1"})
	resp := decode(t, do(t, r, http.MethodPost, "/orders/place", nil))
	orderID := resp["order_id"].(string)

	// New order sits in the pending queue
	queues := decode(t, do(t, r, http.MethodGet, "/kitchen/queues", nil))
	if pending := queues["pending"].([]interface{}); len(pending) != 1 {
		t.Fatalf("pending queue length = %d, want 1", len(pending))
	}

	statusURL := "/kitchen/orders/" + orderID + "/status"

	// Skipping ahead is refused
	if w := do(t, r, http.MethodPut, statusURL, gin.H{"status": "delivered"}); w.Code != http.StatusConflict {
		t.Fatalf("skip ahead: status = %d, want 409", w.Code)
	}
	// Unknown status value is a bad request
	if w := do(t, r, http.MethodPut, statusURL, gin.H{"status": "cooked"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad status: status = %d, want 400", w.Code)
	}
	// The legal sequence walks through
	for _, next := range []string{"preparing", "ready", "delivered"} {
		if w := do(t, r, http.MethodPut, statusURL, gin.H{"status": next}); w.Code != http.StatusOK {
			t.Fatalf("advance to %s: status = %d, body = %s", next, w.Code, w.Body.String())
		}
	}
	// Unknown order is a 404
	if w := do(t, r, http.MethodPut, "/kitchen/orders/missing/status", gin.H{"status": "preparing"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown order: status = %d, want 404", w.Code)
	}
}

func TestWalletOverHTTP(t *testing.T) {
	r, s := newTestRouter(t)

	if w := do(t, r, http.MethodPost, "/user/wallet/recharge", gin.H{"amount": -5}); w.Code != http.StatusBadRequest {
		t.Fatalf("negative recharge: status = %d, want 400", w.Code)
	}
	if got := s.User().WalletBalance; got != 450 {
		t.Fatalf("balance changed by rejected recharge: %v", got)
	}

	w := do(t, r, http.MethodPost, "/user/wallet/recharge", gin.H{"amount": 200})
	if w.Code != http.StatusOK {
		t.Fatalf("recharge: status = %d, body = %s", w.Code, w.Body.String())
	}
	if balance := decode(t, w)["balance"].(float64); balance != 650 {
		t.Fatalf("balance = %v, want 650", balance)
	}

	resp := do(t, r, http.MethodGet, "/user/wallet/transactions", nil)
	var txns []models.Transaction
	if err := json.Unmarshal(resp.Body.Bytes(), &txns); err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 || txns[0].Type != models.TransactionCredit {
		t.Fatalf("ledger = %+v", txns)
	}
}

func TestMenuFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	var items []models.MenuItem
	w := do(t, r, http.MethodGet, "/menu/?category=breakfast", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Aloo Paratha" {
		t.Fatalf("breakfast filter = %+v", items)
	}

	if w := do(t, r, http.MethodGet, "/menu/99", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown item: status = %d, want 404", w.Code)
	}
}
