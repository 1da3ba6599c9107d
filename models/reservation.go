package models

import "time"

// Reservation statuses.
const (
	ReservationStatusPending   = "Pending"
	ReservationStatusConfirmed = "Confirmed"
	ReservationStatusCancelled = "Cancelled"
)

// Reservation holds a table booking. Date and time are stored as submitted
// (free-form strings). Token is single-use: the first Advance order carrying
// it flips HasOrdered.
type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Date       string    `gorm:"type:varchar(50);not null" json:"date"`
	Time       string    `gorm:"type:varchar(50);not null" json:"time"`
	Guests     int       `gorm:"not null;default:1" json:"guests"`
	Table      string    `gorm:"column:table_number;type:varchar(50);default:'TBD'" json:"table"`
	Token      string    `gorm:"type:varchar(20)" json:"token"`
	HasOrdered bool      `gorm:"not null;default:false" json:"has_ordered"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
