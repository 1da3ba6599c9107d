package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/services"
	"github.com/gourmethaven/restaurant-backend/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB        *gorm.DB
	Mailer    services.Mailer
	Gateway   *services.RazorpayService
	Inventory *services.InventoryService
}

func NewOrderController(db *gorm.DB, mailer services.Mailer, gateway *services.RazorpayService) *OrderController {
	return &OrderController{
		DB:        db,
		Mailer:    mailer,
		Gateway:   gateway,
		Inventory: services.NewInventoryService(db),
	}
}

type orderItemRequest struct {
	MenuItemID *uint   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type createOrderRequest struct {
	Customer          string             `json:"customer"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	CustomerPhone     string             `json:"customer_phone"`
	DeliveryAddress   string             `json:"delivery_address"`
	Instructions      string             `json:"instructions"`
	OrderType         string             `json:"order_type"`
	Items             []orderItemRequest `json:"items"`
	Table             string             `json:"table"`
	Token             string             `json:"token"`
	Total             float64            `json:"total"`
	Notes             string             `json:"notes"`
	PaymentMethod     string             `json:"payment_method"`
	RazorpayOrderID   string             `json:"razorpay_order_id"`
	RazorpayPaymentID string             `json:"razorpay_payment_id"`
}

// CreateOrder -> order intake. Validation branches on order type; token
// consumption and the order insert commit in one transaction; inventory
// decrement and the confirmation email run after commit as best-effort
// side effects.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Token == "" {
		if req.OrderType == models.OrderTypeOnline {
			if req.Customer == "" || req.CustomerPhone == "" || req.DeliveryAddress == "" || len(req.Items) == 0 || req.Total == 0 {
				utils.RespondError(c, http.StatusBadRequest, errMissingDeliveryFields)
				return
			}
		} else if req.Customer == "" || len(req.Items) == 0 || req.Total == 0 {
			utils.RespondError(c, http.StatusBadRequest, errMissingFields)
			return
		}
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errInvalidQuantity)
			return
		}
	}

	// Snapshot name/price from the referenced menu items and recompute the
	// total server-side; the client-supplied total must agree.
	lines, expectedTotal, err := oc.buildLineItems(req.Items)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if math.Abs(expectedTotal-req.Total) > 0.01 {
		utils.RespondError(c, http.StatusBadRequest, errTotalMismatch)
		return
	}

	orderType := req.OrderType
	if orderType != models.OrderTypeOnline {
		orderType = models.OrderTypeAdvance
	}

	order := models.Order{
		Customer:          req.Customer,
		Email:             req.Email,
		Phone:             req.Phone,
		CustomerPhone:     req.CustomerPhone,
		DeliveryAddress:   req.DeliveryAddress,
		Instructions:      req.Instructions,
		OrderType:         orderType,
		Items:             lines,
		Table:             req.Table,
		Token:             req.Token,
		Total:             req.Total,
		Status:            models.OrderStatusPending,
		PaymentStatus:     resolvePaymentStatus(req.OrderType, req.PaymentMethod),
		PaymentMethod:     resolvePaymentMethod(req.OrderType, req.PaymentMethod),
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Notes:             req.Notes,
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if req.Token != "" {
			if err := consumeReservationToken(tx, req.Token, req.Table); err != nil {
				return err
			}
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errInvalidToken), errors.Is(err, errTokenAlreadyUsed):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("failed to save order: %w", err))
		}
		return
	}

	// Best-effort side effects; failures are logged and swallowed.
	oc.Inventory.AdjustForOrder(&order)
	if order.Email != "" {
		if err := oc.Mailer.SendOrderConfirmation(&order, order.Email); err != nil {
			utils.ErrorLogger.Printf("Non-critical: failed to send confirmation email for order %d: %v", order.ID, err)
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// buildLineItems resolves each submitted line against the menu. Lines keep
// the menu's current name/price; when the menu item is gone the submitted
// snapshot is trusted so old carts stay orderable.
func (oc *OrderController) buildLineItems(items []orderItemRequest) ([]models.OrderItem, float64, error) {
	lines := make([]models.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		name := item.Name
		price := item.Price
		if item.MenuItemID != nil {
			var menuItem models.MenuItem
			err := oc.DB.First(&menuItem, *item.MenuItemID).Error
			if err == nil {
				name = menuItem.Name
				price = menuItem.Price
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, err
			}
		}
		total += price * float64(item.Quantity)
		lines = append(lines, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       name,
			Price:      price,
			Quantity:   item.Quantity,
		})
	}
	return lines, total, nil
}

// consumeReservationToken marks the matching reservation as ordered. The
// flip is a guarded single-statement update so two concurrent orders
// cannot both consume the same token.
func consumeReservationToken(tx *gorm.DB, token, table string) error {
	var reservation models.Reservation
	if err := tx.Where("token = ? AND table_number = ?", token, table).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errInvalidToken
		}
		return err
	}

	res := tx.Model(&models.Reservation{}).
		Where("id = ? AND has_ordered = ?", reservation.ID, false).
		Update("has_ordered", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errTokenAlreadyUsed
	}
	return nil
}

// resolvePaymentStatus: Online orders paid through a gateway or card start
// Paid, everything else starts Pending.
func resolvePaymentStatus(orderType, paymentMethod string) string {
	if orderType == models.OrderTypeOnline &&
		(paymentMethod == models.PaymentMethodRazorpay || paymentMethod == models.PaymentMethodCard) {
		return models.PaymentStatusPaid
	}
	return models.PaymentStatusPending
}

// resolvePaymentMethod: defaults to Razorpay for Online orders, Cash
// otherwise.
func resolvePaymentMethod(orderType, paymentMethod string) string {
	if paymentMethod != "" {
		return paymentMethod
	}
	if orderType == models.OrderTypeOnline {
		return models.PaymentMethodRazorpay
	}
	return models.PaymentMethodCash
}

// GetAllOrders -> admin listing, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail with line items.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// DownloadBill -> streams the invoice PDF for a persisted order.
func (oc *OrderController) DownloadBill(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	pdfBytes, err := services.GenerateBillPDF(&order)
	if err != nil {
		utils.ErrorLogger.Printf("Error generating bill PDF for order %d: %v", order.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to generate bill PDF"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// CreateRazorpayOrder -> gateway order descriptor (synthetic in mock mode).
func (oc *OrderController) CreateRazorpayOrder(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	gatewayOrder, err := oc.Gateway.CreateOrder(req.Amount)
	if err != nil {
		utils.ErrorLogger.Printf("Razorpay order error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create payment order"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment order created", gatewayOrder)
}

// VerifyRazorpayPayment -> {status: success|failure}.
func (oc *OrderController) VerifyRazorpayPayment(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if oc.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.RespondJSON(c, http.StatusOK, "Payment verified", gin.H{"status": "success"})
		return
	}
	utils.RespondJSON(c, http.StatusBadRequest, "Invalid signature", gin.H{"status": "failure"})
}

// UpdateStatus -> admin sets any status value; no transition graph is
// enforced.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status required"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// UpdatePayment -> admin partial update of payment status/method.
func (oc *OrderController) UpdatePayment(c *gin.Context) {
	var req struct {
		PaymentStatus *string `json:"payment_status"`
		PaymentMethod *string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if req.PaymentStatus != nil && *req.PaymentStatus != "" {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		order.PaymentMethod = *req.PaymentMethod
	}
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order payment updated", order)
}

// UpdateNotes -> admin free-text notes.
func (oc *OrderController) UpdateNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	order.Notes = req.Notes
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order notes updated", order)
}

// DeleteOrder -> admin delete; line items cascade.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := oc.DB.Select("Items").Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"id": order.ID})
}
