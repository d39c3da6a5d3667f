package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/config"
	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/database"
	"github.com/xavierca1/flow-nodes/internal/infra/http/handlers"
	"github.com/xavierca1/flow-nodes/internal/infra/http/middleware"
	"github.com/xavierca1/flow-nodes/internal/infra/integration/agilecrm"
	"github.com/xavierca1/flow-nodes/internal/infra/mail"
	"github.com/xavierca1/flow-nodes/internal/infra/queue"
	"github.com/xavierca1/flow-nodes/internal/infra/worker"
	"github.com/xavierca1/flow-nodes/internal/usecase"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Cliente do CRM
	crm := agilecrm.NewClient(cfg.AgileCRMBaseURL, entity.AgileCRMCredentials{
		Email:  cfg.AgileCRMEmail,
		APIKey: cfg.AgileCRMAPIKey,
	}, logger.Named("agilecrm"))

	// 2. Infra opcional: log de execuções, fila, alertas
	health := handlers.NewHealthHandler(nil, nil, cfg.AgileCRMEmail != "" && cfg.AgileCRMAPIKey != "")

	var execRepo entity.ExecutionRepository
	executions := handlers.NewExecutionHandler(nil)
	if cfg.DatabaseURL != "" {
		db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("falha ao conectar no Postgres", zap.Error(err))
		}
		defer db.Close()

		repo := database.NewExecutionRepository(db, logger.Named("executions"))
		execRepo = repo
		executions.Repo = repo
		health.DB = db

		retention := worker.NewExecutionRetentionWorker(repo, cfg.ExecutionRetention, logger.Named("retention"))
		go retention.Start(ctx)
	}

	var alerts usecase.AlertService
	if cfg.MailHost != "" && len(cfg.AlertEmailTo) > 0 {
		alerts = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.AlertEmailTo)
	}

	// 3. UseCase
	updateUC := usecase.NewUpdateContactUseCase(crm, execRepo, alerts, middleware.NodeMetrics{}, logger.Named("usecase"))

	var producer queue.ProducerInterface
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			logger.Fatal("falha ao conectar no RabbitMQ", zap.Error(err))
		}
		defer rabbitMQ.Close()

		producer = queue.NewProducer(rabbitMQ.Ch)
		health.RabbitMQ = rabbitMQ.Conn

		// O worker usa um canal próprio
		consumerCh, err := rabbitMQ.Conn.Channel()
		if err != nil {
			logger.Fatal("falha ao abrir canal do worker", zap.Error(err))
		}
		w := queue.NewWorker(consumerCh, updateUC, logger.Named("worker"))
		go func() {
			if err := w.Start(ctx, queue.QueueName); err != nil {
				logger.Error("worker parou", zap.Error(err))
			}
		}()
	}

	// 4. Handlers + Router
	limiter := middleware.NewRateLimiter(60, time.Minute)
	go limiter.Cleanup(ctx.Done(), 10*time.Minute)

	router := newRouter(routerDeps{
		Contacts:    handlers.NewContactHandler(updateUC, producer),
		MongoDB:     handlers.NewMongoDBHandler(),
		Validation:  handlers.NewValidationHandler(),
		Executions:  executions,
		Health:      health,
		RateLimiter: limiter,
		TrustProxy:  cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("flow-nodes rodando", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("erro no servidor", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return logger
}
