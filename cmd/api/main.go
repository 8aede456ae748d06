package main

import (
	"log"
	"os"

	"oramen-backend/internal/config"
	"oramen-backend/internal/handlers"
	"oramen-backend/internal/payment"
	"oramen-backend/internal/repository"
	"oramen-backend/internal/routes"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load konfigurasi dari .env
	cfg := config.Load()

	// 2. Konek DB + Redis (Redis opsional)
	config.ConnectDB(cfg.DatabaseDSN)
	config.ConnectRedis(cfg.RedisURL)

	// 3. Init FCM untuk push notif ke staff (opsional juga)
	utils.InitFCM(cfg.FCMCredentialsFile)

	// 4. Gateway Midtrans: divalidasi sekali di sini, bukan dicek null
	// di tiap handler
	gateway := payment.NewGateway(payment.Config{
		ServerKey:    cfg.MidtransServerKey,
		ClientKey:    cfg.MidtransClientKey,
		IsProduction: cfg.MidtransIsProduction,
		FinishURL:    cfg.FrontendURL + "/payment-finish",
	})

	// 5. Order Store + Reconciler
	orderStore := repository.NewOrderRepository(config.DB)

	reconciler := &payment.Reconciler{
		Store:        orderStore,
		StrictVerify: cfg.MidtransStrictVerify,
		NotifyStaff: func(title, body string, data map[string]string) {
			utils.SendNotification(cfg.StaffFCMToken, title, body, data)
		},
	}
	if gateway.Ready() {
		reconciler.Verifier = gateway
	}

	// 6. Folder upload gambar menu
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatal("Gagal membuat folder uploads: ", err)
	}

	// 7. Router + routes
	r := gin.Default()
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, &routes.Handlers{
		Auth:    handlers.NewAuthHandler(cfg),
		Admin:   handlers.NewAdminHandler(config.DB),
		Menu:    handlers.NewMenuHandler(config.DB, config.RDB, cfg.MenuCacheTTL),
		Rating:  handlers.NewRatingHandler(config.DB),
		Order:   handlers.NewOrderHandler(orderStore),
		Upload:  handlers.NewUploadHandler(cfg),
		Payment: handlers.NewPaymentHandler(gateway, reconciler),
	})

	// 8. Jalan
	log.Println("Server berjalan di port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server gagal jalan: ", err)
	}
}
