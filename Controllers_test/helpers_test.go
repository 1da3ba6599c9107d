package Controllers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
}

// fakeMailer records sends; with failSends it simulates a broken SMTP relay.
type fakeMailer struct {
	orderEmails       int
	reservationEmails int
	failSends         bool
}

func (f *fakeMailer) SendOrderConfirmation(order *models.Order, to string) error {
	f.orderEmails++
	if f.failSends {
		return errors.New("smtp relay unavailable")
	}
	return nil
}

func (f *fakeMailer) SendReservationConfirmation(reservation *models.Reservation) error {
	f.reservationEmails++
	if f.failSends {
		return errors.New("smtp relay unavailable")
	}
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
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
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		err := json.NewEncoder(&body).Encode(payload)
		assert.NoError(t, err)
	}
	req, err := http.NewRequest(method, url, &body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func hmacSHA256Hex(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func bytesHavePDFHeader(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF"))
}
