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

type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// GetAllIngredients -> list sorted by name.
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := ic.DB.Order("name asc").Find(&ingredients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ingredients)
}

// CreateIngredient -> admin adds stock item. Name is unique (409 on
// duplicate).
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var req struct {
		Name      string  `json:"name"`
		Quantity  float64 `json:"quantity"`
		Unit      string  `json:"unit"`
		Category  string  `json:"category"`
		Threshold float64 `json:"threshold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name == "" || req.Quantity == 0 || req.Unit == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, quantity, and unit are required"))
		return
	}

	var count int64
	ic.DB.Model(&models.Ingredient{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("ingredient with this name already exists"))
		return
	}

	if req.Category == "" {
		req.Category = "General"
	}
	if req.Threshold == 0 {
		req.Threshold = 10
	}

	ingredient := models.Ingredient{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
		Threshold:   req.Threshold,
		LastUpdated: time.Now(),
	}
	if err := ic.DB.Create(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", ingredient)
}

// UpdateIngredient -> partial update; only provided fields change.
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}

	var req struct {
		Name      *string  `json:"name"`
		Quantity  *float64 `json:"quantity"`
		Unit      *string  `json:"unit"`
		Category  *string  `json:"category"`
		Threshold *float64 `json:"threshold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		ingredient.Name = *req.Name
	}
	if req.Quantity != nil {
		ingredient.Quantity = *req.Quantity
	}
	if req.Unit != nil && *req.Unit != "" {
		ingredient.Unit = *req.Unit
	}
	if req.Category != nil && *req.Category != "" {
		ingredient.Category = *req.Category
	}
	if req.Threshold != nil {
		ingredient.Threshold = *req.Threshold
	}
	ingredient.LastUpdated = time.Now()

	if err := ic.DB.Save(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", ingredient)
}

// DeleteIngredient -> admin removes stock item. Menu items keep their weak
// references; nothing cascades.
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := ic.DB.First(&ingredient, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}

	if err := ic.DB.Delete(&ingredient).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingredient removed", gin.H{"id": ingredient.ID})
}
