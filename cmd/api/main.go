package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "zephyrtask/internal/adapter/http"
	"zephyrtask/internal/adapter/http/handlers"
	httpmiddleware "zephyrtask/internal/adapter/http/middleware"
	"zephyrtask/internal/adapter/notify"
	"zephyrtask/internal/adapter/store"
	appservice "zephyrtask/internal/app/service"
	"zephyrtask/internal/config"
	"zephyrtask/internal/core/ports"
	"zephyrtask/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	var taskStore ports.TaskStore
	switch cfg.StoreBackend {
	case config.StoreBackendSQLite:
		sqliteStore, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("failed to open sqlite store", zap.String("path", cfg.SQLitePath), zap.Error(err))
		}
		defer func() {
			if err := sqliteStore.Close(); err != nil {
				logger.Warn("failed to close sqlite store", zap.Error(err))
			}
		}()
		taskStore = sqliteStore
	default:
		fileStore := store.NewFileStore(cfg.TasksFile)
		logger.Info("using file store", zap.String("path", fileStore.Path()))
		taskStore = fileStore
	}

	notifier := notify.NewEmailNotifier(notify.EmailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Login:    cfg.SMTPLogin,
		Password: cfg.SMTPPassword,
		From:     cfg.FromEmail,
	})

	taskService := appservice.NewTaskService(taskStore)
	notifyService := appservice.NewNotifyService(taskStore, notifier, notify.NewJokes())

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(taskStore)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notifyService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, notificationHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
