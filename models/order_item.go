package models

import "time"

// OrderItem is a line on an order. MenuItemID is a weak reference: the
// name and price are snapshotted at intake so the line survives menu edits
// and deletions.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	MenuItemID *uint     `gorm:"index" json:"menu_item_id,omitempty"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Amount is the line total (unit price times quantity).
func (oi *OrderItem) Amount() float64 {
	return oi.Price * float64(oi.Quantity)
}
