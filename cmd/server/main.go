package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"salon-backend/internal/auth"
	"salon-backend/internal/config"
	"salon-backend/internal/events"
	"salon-backend/internal/handlers"
	"salon-backend/internal/health"
	h "salon-backend/internal/http"
	"salon-backend/internal/logger"
	"salon-backend/internal/middleware"
	"salon-backend/internal/repositories"
	"salon-backend/internal/services"
	"salon-backend/internal/storage"
)

func main() {
	cfg := config.Load()
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("configure logger")
	}

	ctx := context.Background()

	// Repositories hold all state for the process lifetime.
	inventoryRepo := repositories.NewInventoryRepository()
	salesRepo := repositories.NewSalesRepository()
	creditRepo := repositories.NewCreditRepository()
	expenseRepo := repositories.NewExpenseRepository()
	appointmentRepo := repositories.NewAppointmentRepository()
	userRepo := repositories.NewUserRepository()

	jwtManager := auth.NewJWTManager(cfg)

	guard := services.NewStoreGuard()
	hub := events.NewHub()

	inventoryService := services.NewInventoryService(inventoryRepo)
	salesService := services.NewSalesService(salesRepo, inventoryService, guard)
	creditService := services.NewCreditService(creditRepo, inventoryService, salesService, guard)
	expenseService := services.NewExpenseService(expenseRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	userService := services.NewUserService(userRepo, jwtManager)
	reportService := services.NewReportService(inventoryRepo, salesRepo, creditRepo, expenseRepo)
	systemService := services.NewSystemService(inventoryRepo, salesRepo, creditRepo, expenseRepo, guard)

	inventoryService.SetEventHub(hub)
	salesService.SetEventHub(hub)
	creditService.SetEventHub(hub)
	expenseService.SetEventHub(hub)
	appointmentService.SetEventHub(hub)
	systemService.SetEventHub(hub)

	if err := userService.SeedDefaults(ctx,
		cfg.Seed.AdminUsername, cfg.Seed.AdminPassword,
		cfg.Seed.ClerkUsername, cfg.Seed.ClerkPassword,
	); err != nil {
		log.Fatal().Err(err).Msg("seed user accounts")
	}

	// Image storage is optional; the catalog works without it.
	var imageStore *storage.ImageStore
	if cfg.Storage.Bucket != "" {
		store, err := storage.NewImageStore(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("configure image storage")
		}
		imageStore = store
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("image storage enabled")
	}

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(inventoryService, imageStore)
	saleHandler := handlers.NewSaleHandler(salesService)
	creditHandler := handlers.NewCreditHandler(creditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	reportHandler := handlers.NewReportHandler(reportService)
	systemHandler := handlers.NewSystemHandler(systemService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker())

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		userHandler,
		productHandler,
		saleHandler,
		creditHandler,
		expenseHandler,
		appointmentHandler,
		reportHandler,
		systemHandler,
		healthHandler,
		hub,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogger(
				corsMiddleware(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
