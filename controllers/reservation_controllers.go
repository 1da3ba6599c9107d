package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/services"
	"github.com/gourmethaven/restaurant-backend/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB     *gorm.DB
	Mailer services.Mailer
}

func NewReservationController(db *gorm.DB, mailer services.Mailer) *ReservationController {
	return &ReservationController{DB: db, Mailer: mailer}
}

// CreateReservation -> public booking. A single-use token is issued at
// creation and returned for display; the confirmation email is
// best-effort.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Guests int    `json:"guests"`
		Table  string `json:"table"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name == "" || req.Date == "" || req.Time == "" {
		utils.RespondError(c, http.StatusBadRequest, errMissingFields)
		return
	}

	if req.Guests <= 0 {
		req.Guests = 1
	}
	if req.Table == "" {
		req.Table = "TBD"
	}

	reservation := models.Reservation{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Table:  req.Table,
		Token:  utils.GenerateReservationToken(),
		Status: models.ReservationStatusPending,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if reservation.Email != "" {
		if err := rc.Mailer.SendReservationConfirmation(&reservation); err != nil {
			utils.ErrorLogger.Printf("Non-critical: failed to send reservation email to %s: %v", reservation.Email, err)
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations -> admin listing, newest first.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Order("created_at desc").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateStatus -> admin sets reservation status.
func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status required"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	reservation.Status = req.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}

// DeleteReservation -> admin delete.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": reservation.ID})
}
