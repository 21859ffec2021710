package reports

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/logger"
)

type resultProducer interface {
	ProduceMessage(message []byte) error
}

// Worker glues the exports topic to the generator and the results topic.
type Worker struct {
	generator *Generator
	producer  resultProducer
}

func NewWorker(generator *Generator, producer resultProducer) *Worker {
	return &Worker{
		generator: generator,
		producer:  producer,
	}
}

func (w *Worker) Process(ctx context.Context, message []byte) {
	var req ExportRequest
	if err := json.Unmarshal(message, &req); err != nil {
		logger.Error("cannot unmarshal export request", zap.Error(err))
		return
	}

	res := w.generator.GenerateExport(ctx, req)

	raw, err := json.Marshal(res)
	if err != nil {
		logger.Error("cannot marshal export result", zap.Error(err))
		return
	}
	if err = w.producer.ProduceMessage(raw); err != nil {
		logger.Error("failed to send export result", zap.Error(err))
	}
}
