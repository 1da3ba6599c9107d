package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems -> public listing with linked ingredients.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Preload("Ingredients").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenuItem -> admin adds a dish, optionally linking ingredients by id.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		Available   *bool   `json:"available"`
		Ingredients []uint  `json:"ingredients"`
		Image       *string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name == "" || req.Price == 0 || req.Category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, price, and category are required"))
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	var ingredients []models.Ingredient
	if len(req.Ingredients) > 0 {
		if err := mc.DB.Find(&ingredients, req.Ingredients).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   available,
		Ingredients: ingredients,
		Image:       req.Image,
		LastUpdated: time.Now(),
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> partial update; ingredient links are replaced when
// provided.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.Preload("Ingredients").First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Available   *bool    `json:"available"`
		Ingredients *[]uint  `json:"ingredients"`
		Image       *string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil && *req.Price != 0 {
		item.Price = *req.Price
	}
	if req.Category != nil && *req.Category != "" {
		item.Category = *req.Category
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	item.LastUpdated = time.Now()

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if req.Ingredients != nil {
		var ingredients []models.Ingredient
		if len(*req.Ingredients) > 0 {
			if err := mc.DB.Find(&ingredients, *req.Ingredients).Error; err != nil {
				utils.RespondError(c, http.StatusInternalServerError, err)
				return
			}
		}
		if err := mc.DB.Model(&item).Association("Ingredients").Replace(ingredients); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		item.Ingredients = ingredients
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> admin removes a dish. Existing order lines keep their
// cached name/price snapshots.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if err := mc.DB.Model(&item).Association("Ingredients").Clear(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item removed", gin.H{"id": item.ID})
}
