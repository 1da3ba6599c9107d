package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderKeyID is the sentinel key id that keeps the gateway in mock
// mode, so the system can run without live Razorpay credentials.
const PlaceholderKeyID = "rzp_test_placeholder"

// RazorpayConfig holds Razorpay API credentials.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// RazorpayConfigFromEnv reads credentials from the environment.
func RazorpayConfigFromEnv() *RazorpayConfig {
	return &RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

// RazorpayService handles Razorpay API interactions.
type RazorpayService struct {
	config     *RazorpayConfig
	httpClient *http.Client
}

func NewRazorpayService(config *RazorpayConfig) *RazorpayService {
	return &RazorpayService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GatewayOrder is the order descriptor returned to the client. Amount is in
// minor currency units (paise). Mock marks descriptors generated locally
// instead of by the gateway.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Mock     bool   `json:"mock,omitempty"`
}

// IsMockMode reports whether the service runs without live credentials.
func (rs *RazorpayService) IsMockMode() bool {
	return rs.config.KeyID == "" || rs.config.KeyID == PlaceholderKeyID
}

// CreateOrder creates a gateway order for the given amount in rupees. In
// mock mode, or when the amount is invalid, it returns a synthetic
// descriptor instead of calling the gateway.
func (rs *RazorpayService) CreateOrder(amount float64) (*GatewayOrder, error) {
	paise := int64(math.Round(amount * 100))

	if rs.IsMockMode() || amount <= 0 || math.IsNaN(amount) {
		if paise < 0 {
			paise = 0
		}
		return &GatewayOrder{
			ID:       mockOrderID(),
			Amount:   paise,
			Currency: "INR",
			Mock:     true,
		}, nil
	}

	payload := map[string]interface{}{
		"amount":   paise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.razorpay.com/v1/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	auth := rs.config.KeyID + ":" + rs.config.KeySecret
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay API error: %s", string(body))
	}

	var order GatewayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}
	return &order, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with
// the key secret and compares it to the supplied signature. There is no
// replay protection; an old valid signature verifies again.
func (rs *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(rs.config.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func mockOrderID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "order_" + id[:14]
}
