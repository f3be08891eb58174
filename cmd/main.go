package main

import (
	"go.uber.org/zap"

	"github.com/themisatsal/hilla-mobile-sub000/config"
	"github.com/themisatsal/hilla-mobile-sub000/controllers"
	"github.com/themisatsal/hilla-mobile-sub000/routes"
	"github.com/themisatsal/hilla-mobile-sub000/services"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
	"github.com/themisatsal/hilla-mobile-sub000/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := utils.MustLogger(utils.NewLogger())
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	var store stores.Store
	switch cfg.StorageBackend {
	case "memory":
		store = stores.NewMemoryStore()
		logger.Info("using in-memory store")
	default:
		db, err := config.OpenDB(cfg)
		if err != nil {
			logger.Fatal("database init failed", zap.Error(err))
		}
		store = stores.NewGormStore(db)
	}

	hub := services.NewRealtimeHub()
	summarySvc := services.NewDailyLogService(store, store, store, hub, logger.Named("svc.summary"))
	mealSvc := services.NewMealService(store, summarySvc, logger.Named("svc.meal"))
	authSvc := services.NewAuthService(store, cfg.JWTSecret)
	userSvc := services.NewUserService(store)
	analyticsSvc := services.NewAnalyticsService(store, store)

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Users:     controllers.NewUserController(userSvc),
		Meals:     controllers.NewMealController(mealSvc),
		Summaries: controllers.NewSummaryController(summarySvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
		Realtime:  controllers.NewRealtimeController(hub),
	}

	if cfg.AnthropicKey != "" {
		advice := services.NewAnthropicAdviceClient(cfg.AnthropicKey, logger.Named("client.advice"))
		assistant := services.NewAssistantService(summarySvc, store, advice)
		ctrl.Advice = controllers.NewAdviceController(assistant)
	} else {
		logger.Warn("ANTHROPIC_API_KEY missing, advice endpoint disabled")
	}

	r := routes.SetupRouter(ctrl, cfg.JWTSecret)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
