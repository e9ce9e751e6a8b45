package main

import (
	"context"
	"log"

	"tajer-be/internal/audit"
	"tajer-be/internal/config"
	"tajer-be/internal/db"
	"tajer-be/internal/logger"
	"tajer-be/internal/merchant"
	"tajer-be/internal/order"
	"tajer-be/internal/server"
	"tajer-be/internal/settings"
	"tajer-be/internal/wallet"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	var auditor audit.Recorder
	if len(cfg.KafkaBrokers) > 0 {
		auditor = audit.NewKafkaRecorder(cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		auditor = audit.NewLogRecorder()
	}
	defer auditor.Close()

	settingsRepo := settings.NewRepository(database)
	settingsSvc := settings.NewService(settingsRepo)

	walletRepo := wallet.NewRepository(database)
	walletSvc := wallet.NewService(walletRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, settingsSvc, auditor)

	merchantRepo := merchant.NewRepository(database)
	merchantSvc := merchant.NewService(merchantRepo)

	srv := server.New(orderSvc, walletSvc, settingsSvc, merchantSvc)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	if err := srv.Run(context.Background(), cfg.AppPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
