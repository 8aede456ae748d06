package routes

import (
	"oramen-backend/internal/handlers"
	"oramen-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers kumpulan semua handler yang sudah di-wire dari main
type Handlers struct {
	Auth    *handlers.AuthHandler
	Admin   *handlers.AdminHandler
	Menu    *handlers.MenuHandler
	Rating  *handlers.RatingHandler
	Order   *handlers.OrderHandler
	Upload  *handlers.UploadHandler
	Payment *handlers.PaymentHandler
}

func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
		})

		// ====== PUBLIC (customer) ======
		api.GET("/menu", h.Menu.GetPublicMenu)
		api.POST("/menu/:id/rating", h.Rating.SubmitRating)
		api.GET("/menu/:id/rating", h.Rating.GetRating)

		api.POST("/orders", h.Order.CreateOrder)
		api.GET("/orders", h.Order.ListOrders)

		// Flow pembayaran gateway
		api.POST("/create-transaction", h.Payment.CreateTransaction)
		api.GET("/transaction-status/:orderId", h.Payment.GetTransactionStatus)
		api.GET("/client-key", h.Payment.GetClientKey)

		// Webhook dari Midtrans, tanpa auth (diverifikasi lewat Core API)
		api.POST("/payment-notification", h.Payment.HandleNotification)

		// ====== ADMIN ======
		api.POST("/admin/login", h.Auth.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			admin.POST("/upload", h.Upload.UploadImage)
			admin.GET("/stats", h.Admin.GetDashboardStats)
			admin.GET("/reports/monthly", h.Admin.GetMonthlyReport)

			admin.GET("/orders", h.Order.ListOrdersAdmin)
			admin.GET("/orders/:id", h.Order.GetOrderDetail)
			admin.POST("/orders", h.Order.CreateOrder)
			admin.PATCH("/orders/:id/status", h.Order.UpdateOrderStatus)
			admin.DELETE("/orders/:id", h.Order.DeleteOrder)

			admin.GET("/menu", h.Menu.GetAllMenu)
			admin.POST("/menu", h.Menu.CreateMenuItem)
			admin.PUT("/menu/:id", h.Menu.UpdateMenuItem)
			admin.DELETE("/menu/:id", h.Menu.DeleteMenuItem)
			admin.GET("/menu/:id/variants", h.Menu.GetVariants)
			admin.POST("/menu/:id/variants", h.Menu.SaveVariants)
		}
	}
}
