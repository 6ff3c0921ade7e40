package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sevai/sevai/config"
	"sevai/sevai/controllers"
	"sevai/sevai/knowledge"
	"sevai/sevai/locale"
	"sevai/sevai/routes"
	"sevai/sevai/services/alert"
	"sevai/sevai/services/llm"
	"sevai/sevai/services/triage"
	"sevai/sevai/sources/psql"
	"sevai/sevai/sources/psql/dao"
	"sevai/sevai/sources/session"
	"sevai/sevai/sources/storage"
	"sevai/sevai/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	symptomDAO := dao.NewSymptomDAO(db.DB)
	diseaseDAO := dao.NewDiseaseDAO(db.DB)

	catalog := knowledge.NewCatalog(dao.NewKnowledgeSource(symptomDAO, diseaseDAO))
	if err := catalog.Refresh(ctx); err != nil {
		// An empty knowledge base degrades to generic fallback replies;
		// the detector retries read-through on the next message.
		logging.AppLogger.Warn("knowledge catalog refresh failed", zap.Error(err))
	} else {
		snap := catalog.Snapshot()
		logging.AppLogger.Info("knowledge catalog loaded",
			zap.Int("symptoms", len(snap.Symptoms)),
			zap.Int("diseases", len(snap.Diseases)),
		)
	}

	locales, err := locale.Load(cfg.LocaleFile)
	if err != nil {
		logging.ErrorLogger.Error("locale catalog error", zap.Error(err))
		os.Exit(1)
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		logging.ErrorLogger.Error("session store error", zap.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	var provider llm.Provider
	switch cfg.LLMProvider {
	case "openai":
		provider = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		provider = llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	var alerts alert.Dispatcher = alert.Noop{}
	if cfg.AlertWebhookURL != "" {
		alerts = alert.NewWebhook(cfg.AlertWebhookURL)
	}

	var archiver triage.Archiver
	if cfg.MinIOEndpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		archiver = minioClient
	}

	svc := triage.NewService(store, catalog, provider, locales, alerts, archiver, cfg.LLMTimeout)
	chatCtrl := controllers.NewChatController(svc)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/api/v1/chat", routes.ChatRoutes(chatCtrl, cfg))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("sevai triage service listening", zap.String("addr", cfg.HTTPAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}

func newSessionStore(cfg config.Config) (session.Store, error) {
	switch session.StoreType(cfg.SessionDriver) {
	case session.StoreTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return session.NewStore(session.StoreTypeRedis,
			session.WithRedisClient(client),
			session.WithRedisTTL(cfg.SessionTTL),
		)
	default:
		return session.NewStore(session.StoreTypeMemory)
	}
}
