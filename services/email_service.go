package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gourmethaven/restaurant-backend/models"
	"gopkg.in/gomail.v2"
)

// Mailer sends confirmation messages. Failures never roll back the parent
// operation; callers log and continue.
type Mailer interface {
	SendOrderConfirmation(order *models.Order, to string) error
	SendReservationConfirmation(reservation *models.Reservation) error
}

// EmailConfig holds SMTP relay settings.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailConfigFromEnv reads SMTP settings, defaulting to Gmail STARTTLS.
func EmailConfigFromEnv() *EmailConfig {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = os.Getenv("EMAIL_USER")
	}
	return &EmailConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASSWORD"),
		From:     from,
	}
}

// EmailService sends templated confirmation emails over SMTP.
type EmailService struct {
	config *EmailConfig
	dialer *gomail.Dialer
}

func NewEmailService(config *EmailConfig) *EmailService {
	return &EmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (es *EmailService) SendOrderConfirmation(order *models.Order, to string) error {
	deliveryBlock := ""
	if order.OrderType == models.OrderTypeOnline {
		deliveryBlock = fmt.Sprintf(`
        <h4>Delivery Details</h4>
        <p><strong>Address:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>`, order.DeliveryAddress, order.CustomerPhone)
	}

	html := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
        <h2 style="color:#e74c3c;">Order Confirmed</h2>
        <p>Hello <strong>%s</strong>,</p>
        <p>Your order has been successfully placed.</p>

        <h3>Order Details</h3>
        <p><strong>Order ID:</strong> #%s</p>
        <p><strong>Type:</strong> %s</p>
        <p><strong>Total:</strong> Rs. %.0f</p>
        <p><strong>Payment:</strong> %s</p>
        <p><strong>Status:</strong> %s</p>
        %s

        <hr />
        <p style="font-size:12px;color:#777;">
          Thank you for choosing <strong>Gourmet Haven</strong>.
        </p>
      </div>`,
		order.Customer, order.ShortID(), order.OrderType, order.Total,
		order.PaymentMethod, order.PaymentStatus, deliveryBlock)

	m := gomail.NewMessage()
	m.SetHeader("From", es.config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmed! Your Gourmet Haven order #%s", order.ShortID()))
	m.SetBody("text/html", html)

	return es.dialer.DialAndSend(m)
}

func (es *EmailService) SendReservationConfirmation(reservation *models.Reservation) error {
	table := reservation.Table
	if table == "" || table == "TBD" {
		table = "Assigned on arrival"
	}

	html := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
        <h2 style="color:#2c3e50;">Reservation Confirmed</h2>
        <p>Hello <strong>%s</strong>,</p>
        <p>Your table has been reserved successfully.</p>

        <h3>Reservation Details</h3>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
        <p><strong>Guests:</strong> %d</p>
        <p><strong>Table:</strong> %s</p>
        <p><strong>Token:</strong> %s</p>

        <hr />
        <p style="font-size:12px;color:#777;">
          We look forward to serving you at <strong>Gourmet Haven</strong>.
        </p>
      </div>`,
		reservation.Name, reservation.Date, reservation.Time,
		reservation.Guests, table, reservation.Token)

	m := gomail.NewMessage()
	m.SetHeader("From", es.config.From)
	m.SetHeader("To", reservation.Email)
	m.SetHeader("Subject", "Reservation Confirmed - Gourmet Haven")
	m.SetBody("text/html", html)

	return es.dialer.DialAndSend(m)
}
