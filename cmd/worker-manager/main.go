// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"assessment-workers/internal/common/aws"
	"assessment-workers/internal/common/camunda"
	"assessment-workers/internal/common/config"
	"assessment-workers/internal/common/database"
	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/observability"
	"assessment-workers/internal/common/validation"
	"assessment-workers/internal/store"
	"assessment-workers/internal/workers/assessment/jobs"
	"assessment-workers/pkg/registry"

	cc "assessment-workers/internal/workers/assessment/calculate-compatibility"
	cs "assessment-workers/internal/workers/assessment/check-staleness"
	sa "assessment-workers/internal/workers/assessment/score-attachment"
	sb "assessment-workers/internal/workers/assessment/score-big-five"
	sc "assessment-workers/internal/workers/assessment/score-custom-assessment"
	sr "assessment-workers/internal/workers/assessment/send-reassessment-reminder"
	vr "assessment-workers/internal/workers/assessment/validate-responses"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
	})
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			zapLog.Warn("observability shutdown failed", zap.Error(err))
		}
	}()

	// --- Activity registry and input schemas ---
	var schemas *validation.SchemaValidator
	if cfg.Registry.ValidateInputs {
		reg, err := registry.LoadRegistry(cfg.Registry.Path)
		if err != nil {
			zapLog.Fatal("activity registry load failed", zap.Error(err))
		}
		schemas, err = validation.NewSchemaValidator(reg)
		if err != nil {
			zapLog.Fatal("input schema compilation failed", zap.Error(err))
		}
		zapLog.Info("Input schemas loaded", zap.Int("activities", len(reg.Activities)))
	}

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.Migrate(ctx); err != nil {
		zapLog.Fatal("postgres migration failed", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	rdb := database.NewRedis(cfg.Database.Redis)
	err = retryWithBackoff(func() error {
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	results := store.NewResultStore(pg.DB)
	cached := store.NewCachedResults(results, rdb.Client, time.Duration(cfg.Scoring.CacheTTL)*time.Second, log)
	persister := &jobs.Persister{Saver: results, Cache: cached, Logger: log}

	// --- Init Elasticsearch with retry (optional) ---
	if cfg.Database.Elasticsearch.Enabled() {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch, nil)
			if err != nil {
				return err
			}
			return esClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		if err := esClient.EnsureIndex(ctx, cfg.Scoring.ResultsIndex); err != nil {
			zapLog.Fatal("elasticsearch index setup failed", zap.Error(err))
		}
		persister.Indexer = store.NewResultIndexer(esClient.Client, cfg.Scoring.ResultsIndex)
		zapLog.Info("Elasticsearch connected successfully", zap.String("index", cfg.Scoring.ResultsIndex))
	} else {
		zapLog.Info("Elasticsearch not configured, results will not be indexed")
	}

	// --- Reminder delivery ---
	var notifier sr.Notifier
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		n, err := aws.NewNotifier(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("aws notifier init failed", zap.Error(err))
		}
		notifier = n
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.Plaintext,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()
	zapLog.Info("Zeebe client connected successfully")

	deps := jobs.Deps{
		Logger:    log,
		Errors:    errors.NewErrorHandler(log),
		Schemas:   schemas,
		Telemetry: obs,
	}

	handlers := map[string]camunda.HandlerFunc{
		vr.TaskType: vr.NewHandler(vr.NewConfig(cfg), deps, results).Handle,
		sb.TaskType: sb.NewHandler(sb.NewConfig(cfg), deps, results, persister).Handle,
		sa.TaskType: sa.NewHandler(sa.NewConfig(cfg), deps, results, persister).Handle,
		sc.TaskType: sc.NewHandler(sc.NewConfig(cfg), deps, results, persister).Handle,
		cc.TaskType: cc.NewHandler(cc.NewConfig(cfg), deps, cached).Handle,
		cs.TaskType: cs.NewHandler(cs.NewConfig(cfg), deps, cached).Handle,
		sr.TaskType: sr.NewHandler(sr.NewConfig(cfg), deps, results, notifier).Handle,
	}

	manager := camunda.NewManager(zeebe.GetClient(), log)
	for taskType, handle := range handlers {
		if !config.IsWorkerEnabled(cfg, taskType) {
			zapLog.Info("worker disabled", zap.String("taskType", taskType))
			continue
		}
		wcfg := config.GetWorkerConfig(cfg, taskType)
		manager.Start(camunda.WorkerOptions{
			TaskType:      taskType,
			Name:          cfg.App.Name,
			MaxJobsActive: wcfg.MaxJobsActive,
			Timeout:       config.GetDuration(wcfg.Timeout),
		}, handle)
	}
	zapLog.Info("All workers registered", zap.Strings("taskTypes", manager.TaskTypes()))

	// --- Health & Metrics ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]interface{}{"workers": manager.TaskTypes()}
		code := http.StatusOK
		if err := pg.Ping(checkCtx); err != nil {
			status["postgres"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(checkCtx); err != nil {
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(status)
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: cfg.Observability.MetricsAddr, Handler: mux}
	go func() {
		zapLog.Info("Health server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("health server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	manager.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("health server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Worker manager stopped")
}
