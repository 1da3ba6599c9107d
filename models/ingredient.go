package models

import "time"

// Ingredient is stock-tracked raw material. Quantity may go negative;
// order fulfillment decrements it without a floor.
type Ingredient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);unique;not null" json:"name"`
	Quantity    float64   `gorm:"not null;default:0" json:"quantity"`
	Unit        string    `gorm:"type:varchar(50);default:'pcs'" json:"unit"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Threshold   float64   `gorm:"default:10" json:"threshold"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLowStock reports whether quantity has fallen to the alert threshold.
func (i *Ingredient) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}
