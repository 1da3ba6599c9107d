package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/router"
	"github.com/gourmethaven/restaurant-backend/services"
	"github.com/gourmethaven/restaurant-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// recordingMailer records sends instead of talking to SMTP.
type recordingMailer struct {
	orderEmails       []string
	reservationEmails []string
}

func (m *recordingMailer) SendOrderConfirmation(order *models.Order, to string) error {
	m.orderEmails = append(m.orderEmails, to)
	return nil
}

func (m *recordingMailer) SendReservationConfirmation(res *models.Reservation) error {
	m.reservationEmails = append(m.reservationEmails, res.Email)
	return nil
}

// TestEndToEndIntegration exercises the main flow:
// 0. Seed admin, ingredients and menu, then login -> token
// 1. Create a reservation -> reservation token
// 2. Place an advance order with the token
// 3. Check inventory was decremented
// 4. Reusing the token must fail
// 5. Download the bill PDF
// 6. Admin lists orders with the JWT
// 7. Create a mock gateway order and verify its payment
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	mailer := &recordingMailer{}
	gateway := services.NewRazorpayService(&services.RazorpayConfig{
		KeyID:     services.PlaceholderKeyID,
		KeySecret: "integration_secret",
	})
	r := router.SetupRouter(db, mailer, gateway)

	jwt := loginTest(t, r)

	resToken := createReservationTest(t, r)

	orderID := createAdvanceOrderTest(t, r, resToken)

	checkInventoryTest(t, db)

	reuseTokenTest(t, r, resToken)

	downloadBillTest(t, r, orderID)

	listOrdersTest(t, r, jwt, orderID)

	verifyPaymentTest(t, r)
}

// setupTestDB migrates the models into in-memory SQLite and seeds data.
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Email:        "admin@gourmethaven.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})

	flour := models.Ingredient{Name: "Flour", Quantity: 10, Unit: "kg", Category: "Dry", Threshold: 2}
	cheese := models.Ingredient{Name: "Cheese", Quantity: 5, Unit: "kg", Category: "Dairy", Threshold: 1}
	db.Create(&flour)
	db.Create(&cheese)

	db.Create(&models.MenuItem{
		Name:        "Margherita Pizza",
		Price:       250,
		Category:    "Mains",
		Available:   true,
		Ingredients: []models.Ingredient{flour, cheese},
	})

	return db
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %q", w.Body.String())
	}
	return data
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := doRequest(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "admin@gourmethaven.test",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	token, _ := parseData(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned empty token")
	}
	return token
}

func createReservationTest(t *testing.T, r *gin.Engine) string {
	w := doRequest(t, r, "POST", "/api/reservations", "", map[string]interface{}{
		"name":   "Alice",
		"email":  "alice@example.com",
		"phone":  "9876543210",
		"date":   "2026-09-01",
		"time":   "19:30",
		"guests": 2,
		"table":  "A1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create reservation failed: %d %s", w.Code, w.Body.String())
	}
	token, _ := parseData(t, w)["token"].(string)
	if len(token) != 9 {
		t.Fatalf("expected 9-char reservation token, got %q", token)
	}
	return token
}

func createAdvanceOrderTest(t *testing.T, r *gin.Engine, resToken string) uint {
	w := doRequest(t, r, "POST", "/api/orders", "", map[string]interface{}{
		"order_type": models.OrderTypeAdvance,
		"token":      resToken,
		"table":      "A1",
		"customer":   "Alice",
		"email":      "alice@example.com",
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "name": "Margherita Pizza", "price": 250, "quantity": 2},
		},
		"total": 500,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order failed: %d %s", w.Code, w.Body.String())
	}
	data := parseData(t, w)
	id, ok := data["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("order response missing id: %v", data)
	}
	if data["status"] != models.OrderStatusPending {
		t.Fatalf("expected pending order, got %v", data["status"])
	}
	return uint(id)
}

func checkInventoryTest(t *testing.T, db *gorm.DB) {
	var flour, cheese models.Ingredient
	db.Where("name = ?", "Flour").First(&flour)
	db.Where("name = ?", "Cheese").First(&cheese)
	// One unit per order line regardless of quantity.
	if flour.Quantity != 9 {
		t.Fatalf("expected flour at 9, got %v", flour.Quantity)
	}
	if cheese.Quantity != 4 {
		t.Fatalf("expected cheese at 4, got %v", cheese.Quantity)
	}
}

func reuseTokenTest(t *testing.T, r *gin.Engine, resToken string) {
	w := doRequest(t, r, "POST", "/api/orders", "", map[string]interface{}{
		"order_type": models.OrderTypeAdvance,
		"token":      resToken,
		"table":      "A1",
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "name": "Margherita Pizza", "price": 250, "quantity": 1},
		},
		"total": 250,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected token reuse to be rejected, got %d %s", w.Code, w.Body.String())
	}
}

func downloadBillTest(t *testing.T, r *gin.Engine, orderID uint) {
	w := doRequest(t, r, "GET", fmt.Sprintf("/api/orders/%d/bill", orderID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("download bill failed: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("bill response is not a PDF")
	}
}

func listOrdersTest(t *testing.T, r *gin.Engine, jwt string, orderID uint) {
	// No token -> 401
	w := doRequest(t, r, "GET", "/api/orders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doRequest(t, r, "GET", "/api/orders", jwt, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list orders failed: %d %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse list response: %v", err)
	}
	orders, ok := resp["data"].([]interface{})
	if !ok || len(orders) != 1 {
		t.Fatalf("expected exactly one order, got %v", resp["data"])
	}
	first := orders[0].(map[string]interface{})
	if uint(first["id"].(float64)) != orderID {
		t.Fatalf("expected order %d in listing, got %v", orderID, first["id"])
	}
}

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifyPaymentTest(t *testing.T, r *gin.Engine) {
	w := doRequest(t, r, "POST", "/api/orders/create-razorpay-order", "", map[string]interface{}{
		"amount": 500,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create gateway order failed: %d %s", w.Code, w.Body.String())
	}
	data := parseData(t, w)
	if data["amount"].(float64) != 50000 {
		t.Fatalf("expected amount in paise, got %v", data["amount"])
	}
	if data["mock"] != true {
		t.Fatalf("expected mock gateway order, got %v", data)
	}
	gatewayOrderID := data["id"].(string)

	sig := signPayment("integration_secret", gatewayOrderID, "pay_int_1")
	w = doRequest(t, r, "POST", "/api/orders/verify-razorpay-payment", "", map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": "pay_int_1",
		"razorpay_signature":  sig,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify payment failed: %d %s", w.Code, w.Body.String())
	}
	if parseData(t, w)["status"] != "success" {
		t.Fatalf("expected success verification: %s", w.Body.String())
	}
}
