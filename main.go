package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bodeppav/New-Expense-Tracker-Backend/auth"
	"github.com/bodeppav/New-Expense-Tracker-Backend/config"
	"github.com/bodeppav/New-Expense-Tracker-Backend/handlers"
	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
	"github.com/bodeppav/New-Expense-Tracker-Backend/middleware"
	"github.com/bodeppav/New-Expense-Tracker-Backend/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Development); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := mongodb.Connect(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		logger.Get().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	authService := auth.NewService(store, cfg.Auth)
	handler := handlers.New(authService, store, store)

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(handler, authService)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Get().Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Get().Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Get().Error("MongoDB disconnect failed", zap.Error(err))
	}
	logger.Get().Info("server stopped")
}

func setupRouter(handler *handlers.Handler, authService *auth.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Cors)
	router.Use(middleware.RequestLog)

	router.POST("/register", handler.HandleRegister)
	router.POST("/login", handler.HandleLogin)
	router.GET("/healthz", handler.HandleHealthz)

	expenses := router.Group("/expenses")
	expenses.Use(middleware.RequireAuth(authService))
	{
		expenses.GET("", handler.HandleGetExpenses)
		expenses.POST("", handler.HandleCreateExpense)
		expenses.PUT("/:id", handler.HandleUpdateExpense)
		expenses.DELETE("/:id", handler.HandleDeleteExpense)
	}

	return router
}
