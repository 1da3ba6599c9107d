package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/controllers"
	"github.com/gourmethaven/restaurant-backend/middlewares"
	"github.com/gourmethaven/restaurant-backend/services"
	"gorm.io/gorm"
)

// SetupRouter wires middlewares, controllers and routes. Mailer and gateway
// are passed in so tests can substitute doubles.
func SetupRouter(db *gorm.DB, mailer services.Mailer, gateway *services.RazorpayService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db, mailer, gateway)
	reservationCtrl := controllers.NewReservationController(db, mailer)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Restaurant backend is running")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.POST("/auth/login", userCtrl.Login)

	api.GET("/menu", menuCtrl.GetAllMenuItems)

	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:id/bill", orderCtrl.DownloadBill)
	api.POST("/orders/create-razorpay-order", orderCtrl.CreateRazorpayOrder)
	api.POST("/orders/verify-razorpay-payment", orderCtrl.VerifyRazorpayPayment)

	api.POST("/reservations", reservationCtrl.CreateReservation)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := api.Group("/")
	authed.Use(middlewares.AuthMiddleware())

	authed.GET("/auth/me", userCtrl.GetProfile)
	authed.GET("/ingredients", ingredientCtrl.GetAllIngredients)
	authed.GET("/orders/:id", orderCtrl.GetOrderByID)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := api.Group("/")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())

	admin.POST("/ingredients", ingredientCtrl.CreateIngredient)
	admin.PUT("/ingredients/:id", ingredientCtrl.UpdateIngredient)
	admin.DELETE("/ingredients/:id", ingredientCtrl.DeleteIngredient)

	admin.POST("/menu", menuCtrl.CreateMenuItem)
	admin.PUT("/menu/:id", menuCtrl.UpdateMenuItem)
	admin.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)

	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	admin.PUT("/orders/:id/payment", orderCtrl.UpdatePayment)
	admin.PUT("/orders/:id/notes", orderCtrl.UpdateNotes)
	admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	admin.GET("/reservations", reservationCtrl.GetAllReservations)
	admin.PUT("/reservations/:id/status", reservationCtrl.UpdateStatus)
	admin.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)

	return r
}
