package reports

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"dhaqaaleeye/finance-bot/internal/logger"
)

const exportFailedMessage = "Can't generate your export atm. Try later"

type documentSender interface {
	SendMessage(text string, userID int64) error
	SendDocument(name string, data []byte, userID int64) error
}

// Acceptor receives finished exports from the results topic and delivers
// the file to the chat that asked for it.
type Acceptor struct {
	sender documentSender
}

func NewAcceptor(sender documentSender) *Acceptor {
	return &Acceptor{sender: sender}
}

func (a *Acceptor) Process(_ context.Context, message []byte) {
	var res ExportResult
	if err := json.Unmarshal(message, &res); err != nil {
		logger.Error("cannot unmarshal export result", zap.Error(err))
		return
	}

	if res.Err != "" {
		logger.Error("export failed", zap.Int64("chatID", res.ChatID), zap.String("err", res.Err))
		if err := a.sender.SendMessage(exportFailedMessage, res.ChatID); err != nil {
			logger.Error("cannot deliver export failure", zap.Error(err))
		}
		return
	}

	if err := a.sender.SendDocument(res.Filename, []byte(res.CSV), res.ChatID); err != nil {
		logger.Error("cannot deliver export", zap.Int64("chatID", res.ChatID), zap.Error(err))
	}
}
