package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/clients/finapi"
	"dhaqaaleeye/finance-bot/internal/clients/kafka"
	"dhaqaaleeye/finance-bot/internal/config"
	"dhaqaaleeye/finance-bot/internal/logger"
	"dhaqaaleeye/finance-bot/internal/model/reports"
	"dhaqaaleeye/finance-bot/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

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

	apiClient := finapi.New(conf.Api())
	generator := reports.NewGenerator(apiClient)

	producer, err := kafka.NewProducer(conf.Kafka(), conf.Kafka().ResultsTopic())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	consumer, err := kafka.NewConsumer(conf.Kafka(), conf.Kafka().ExportsTopic(), reports.NewWorker(generator, producer))
	if err != nil {
		logger.Fatal("failed to init kafka consumer:", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
