package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/saim-honey388/BAKERY-CHAT/internal/api"
	"github.com/saim-honey388/BAKERY-CHAT/internal/branch"
	"github.com/saim-honey388/BAKERY-CHAT/internal/catalog"
	"github.com/saim-honey388/BAKERY-CHAT/internal/config"
	"github.com/saim-honey388/BAKERY-CHAT/internal/conversation"
	"github.com/saim-honey388/BAKERY-CHAT/internal/db"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
	"github.com/saim-honey388/BAKERY-CHAT/internal/middleware"
	"github.com/saim-honey388/BAKERY-CHAT/internal/order"
	"github.com/saim-honey388/BAKERY-CHAT/internal/session"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	branches, err := branch.Load(cfg.BranchesFile)
	if err != nil {
		logger.L().Fatal("failed to load branches", zap.Error(err))
	}

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cfg.FinalizeTimeout)

	sessions := session.New(context.Background(), cfg)
	machine := conversation.NewMachine(catalogSvc, orderSvc, branches)

	handler := api.NewHandler(machine, sessions, orderSvc, cfg.SessionTTL)

	// Session resolution runs before access logging so the log line
	// carries the session ID.
	var root http.Handler = handler.Routes()
	root = middleware.RateLimitMiddleware(root)
	root = logger.LoggingMiddleware(root)
	root = middleware.SessionMiddleware(root)
	root = logger.RequestIDMiddleware(root)

	logger.L().Info("bakery assistant listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, root); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
