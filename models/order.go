package models

import (
	"fmt"
	"time"
)

// Order types.
const (
	OrderTypeAdvance = "Advance"
	OrderTypeOnline  = "Online"
)

// Order statuses. No transition graph is enforced server-side; admins may
// set any of these directly.
const (
	OrderStatusPending   = "Pending"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Payment methods, including the mock variants used when the gateway runs
// without live credentials.
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCard         = "Card"
	PaymentMethodUPI          = "UPI"
	PaymentMethodStripe       = "Stripe"
	PaymentMethodRazorpay     = "Razorpay"
	PaymentMethodPOD          = "POD"
	PaymentMethodRazorpayMock = "Razorpay (Mock)"
	PaymentMethodStripeMock   = "Stripe (Mock)"
)

type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Customer          string      `gorm:"type:varchar(255);not null" json:"customer"`
	Email             string      `gorm:"type:varchar(255)" json:"email"`
	Phone             string      `gorm:"type:varchar(50)" json:"phone"`
	CustomerPhone     string      `gorm:"type:varchar(50)" json:"customer_phone"`
	DeliveryAddress   string      `gorm:"type:text" json:"delivery_address"`
	Instructions      string      `gorm:"type:text" json:"instructions"`
	OrderType         string      `gorm:"type:varchar(20);not null;default:'Advance'" json:"order_type"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Table             string      `gorm:"column:table_number;type:varchar(50)" json:"table"`
	Token             string      `gorm:"type:varchar(20)" json:"token"`
	Total             float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status            string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentStatus     string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	PaymentMethod     string      `gorm:"type:varchar(30);not null;default:'Cash'" json:"payment_method"`
	RazorpayOrderID   string      `gorm:"type:varchar(100)" json:"razorpay_order_id"`
	RazorpayPaymentID string      `gorm:"type:varchar(100)" json:"razorpay_payment_id"`
	Notes             string      `gorm:"type:text;default:''" json:"notes"`
	CreatedAt         time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time   `gorm:"not null" json:"updated_at"`
}

// ShortID is the abbreviated order reference printed on bills and emails.
func (o *Order) ShortID() string {
	return fmt.Sprintf("%08d", o.ID)
}
