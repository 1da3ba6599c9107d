package models

import "time"

type MenuItem struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Price       float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string       `gorm:"type:varchar(100);not null" json:"category"`
	Available   bool         `gorm:"not null;default:true" json:"available"`
	Ingredients []Ingredient `gorm:"many2many:menu_item_ingredients" json:"ingredients"`
	Image       *string      `gorm:"type:varchar(255)" json:"image,omitempty"`
	LastUpdated time.Time    `json:"last_updated"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
