package services

import (
	"time"

	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/utils"
	"gorm.io/gorm"
)

// InventoryService applies post-order stock adjustments.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// AdjustForOrder decrements each ingredient linked to each ordered menu
// item by one unit per order line, regardless of the line quantity. No
// floor at zero, no rollback of earlier decrements; errors are logged and
// swallowed, the order stands either way.
func (is *InventoryService) AdjustForOrder(order *models.Order) {
	for _, item := range order.Items {
		if item.MenuItemID == nil {
			continue
		}

		var menuItem models.MenuItem
		if err := is.DB.Preload("Ingredients").First(&menuItem, *item.MenuItemID).Error; err != nil {
			utils.ErrorLogger.Printf("inventory: menu item %d not found for order %d: %v", *item.MenuItemID, order.ID, err)
			continue
		}

		for _, ingredient := range menuItem.Ingredients {
			err := is.DB.Model(&models.Ingredient{}).
				Where("id = ?", ingredient.ID).
				Updates(map[string]interface{}{
					"quantity":     gorm.Expr("quantity - 1"),
					"last_updated": time.Now(),
				}).Error
			if err != nil {
				utils.ErrorLogger.Printf("inventory: failed to decrement ingredient %d for order %d: %v", ingredient.ID, order.ID, err)
			}
		}
	}
}
