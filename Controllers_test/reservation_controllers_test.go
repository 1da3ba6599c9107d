package Controllers_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/controllers"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var tokenPattern = regexp.MustCompile(`^[A-Z0-9]{9}$`)

func setupReservationRouter(db *gorm.DB, mailer *fakeMailer) *gin.Engine {
	ctrl := controllers.NewReservationController(db, mailer)

	router := gin.New()
	router.POST("/reservations", ctrl.CreateReservation)
	router.GET("/reservations", ctrl.GetAllReservations)
	router.PUT("/reservations/:id/status", ctrl.UpdateStatus)
	router.DELETE("/reservations/:id", ctrl.DeleteReservation)
	return router
}

func TestCreateReservationIssuesToken(t *testing.T) {
	db := openTestDB(t)
	mailer := &fakeMailer{}
	router := setupReservationRouter(db, mailer)

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name":   "Alice",
		"date":   "2025-12-20",
		"time":   "19:00",
		"guests": 4,
		"table":  "A1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, "A1", data["table"])
	assert.Equal(t, models.ReservationStatusPending, data["status"])
	assert.Equal(t, false, data["has_ordered"])
	assert.Regexp(t, tokenPattern, data["token"])
	assert.Equal(t, 0, mailer.reservationEmails)
}

func TestCreateReservationMissingFields(t *testing.T) {
	db := openTestDB(t)
	router := setupReservationRouter(db, &fakeMailer{})

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name": "Alice",
		"date": "2025-12-20",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateReservationDefaults(t *testing.T) {
	db := openTestDB(t)
	router := setupReservationRouter(db, &fakeMailer{})

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name": "Bob",
		"date": "2026-01-05",
		"time": "20:30",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["guests"])
	assert.Equal(t, "TBD", data["table"])
}

func TestCreateReservationEmailFailureStillCreates(t *testing.T) {
	db := openTestDB(t)
	mailer := &fakeMailer{failSends: true}
	router := setupReservationRouter(db, mailer)

	w := doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name":  "Carol",
		"email": "carol@example.com",
		"date":  "2026-02-14",
		"time":  "18:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, mailer.reservationEmails)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateReservationStatus(t *testing.T) {
	db := openTestDB(t)
	router := setupReservationRouter(db, &fakeMailer{})

	doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name": "Dave", "date": "2026-03-01", "time": "19:00",
	})

	w := doJSON(t, router, "PUT", "/reservations/1/status", map[string]interface{}{
		"status": models.ReservationStatusConfirmed,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var reservation models.Reservation
	db.First(&reservation, 1)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)

	w = doJSON(t, router, "PUT", "/reservations/99/status", map[string]interface{}{
		"status": models.ReservationStatusCancelled,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReservation(t *testing.T) {
	db := openTestDB(t)
	router := setupReservationRouter(db, &fakeMailer{})

	doJSON(t, router, "POST", "/reservations", map[string]interface{}{
		"name": "Eve", "date": "2026-04-01", "time": "12:00",
	})

	w := doJSON(t, router, "DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
