package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/clients/cache"
	"dhaqaaleeye/finance-bot/internal/clients/finapi"
	"dhaqaaleeye/finance-bot/internal/clients/kafka"
	"dhaqaaleeye/finance-bot/internal/clients/tg"
	"dhaqaaleeye/finance-bot/internal/config"
	"dhaqaaleeye/finance-bot/internal/logger"
	"dhaqaaleeye/finance-bot/internal/model/messages"
	"dhaqaaleeye/finance-bot/internal/model/reports"
	"dhaqaaleeye/finance-bot/internal/model/session"
	"dhaqaaleeye/finance-bot/internal/model/storage"
	"dhaqaaleeye/finance-bot/internal/tracing"
)

type botStorage interface {
	GetByID(ctx context.Context, userID int64) (session.Session, error)
	SaveByID(ctx context.Context, userID int64, s session.Session) error
	DeleteByID(ctx context.Context, userID int64) error

	CacheView(userID int64, view, text string) error
	GetView(userID int64, view string) (string, error)
	InvalidateViews(userID int64, views []string) error
}

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() {
		_ = closer.Close()
	}()

	tgClient, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	apiClient := finapi.New(conf.Api())
	store := newStorage(conf)
	sessions := session.NewManager(store, apiClient)

	producer, err := kafka.NewProducer(conf.Kafka(), conf.Kafka().ExportsTopic())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	handler := messages.NewHandler(sessions, apiClient, store, producer, conf.App())
	msgService := messages.NewService(tgClient, handler)

	consumer, err := kafka.NewConsumer(conf.Kafka(), conf.Kafka().ResultsTopic(), reports.NewAcceptor(tgClient))
	if err != nil {
		logger.Fatal("failed to init kafka consumer:", zap.Error(err))
	}

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if err := consumer.StartConsuming(ctx); err != nil {
			logger.Error("results consumer stopped", zap.Error(err))
		}
	}()
	go serveMetrics(conf.App().MetricsAddr())

	tgClient.ListenUpdates(ctx, msgService)
}

// newStorage picks memcached when hosts are configured, otherwise sessions
// and cached views live in process memory.
func newStorage(conf *config.Service) botStorage {
	if len(conf.Memcached().Hosts()) == 0 {
		logger.Info("using in-memory storage")
		return storage.NewInMemStorage()
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached:", zap.Error(err))
	}
	return mc
}

func serveMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())

	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
