package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhaqaaleeye/finance-bot/internal/entity/record"
	"dhaqaaleeye/finance-bot/internal/model/reports/mock"
)

type producerStub struct {
	produced [][]byte
}

func (p *producerStub) ProduceMessage(message []byte) error {
	p.produced = append(p.produced, message)
	return nil
}

type senderStub struct {
	messages  []string
	documents []string
	chatIDs   []int64
}

func (s *senderStub) SendMessage(text string, userID int64) error {
	s.messages = append(s.messages, text)
	s.chatIDs = append(s.chatIDs, userID)
	return nil
}

func (s *senderStub) SendDocument(name string, _ []byte, userID int64) error {
	s.documents = append(s.documents, name)
	s.chatIDs = append(s.chatIDs, userID)
	return nil
}

func Test_OnWorkerProcess_ShouldProduceResultForRequest(t *testing.T) {
	m := minimock.NewController(t)
	gateway := mock.NewRecordsGatewayMock(m)
	gateway.ListAllIncomesMock.Return([]record.Income{
		{
			Source: "Salary",
			Amount: record.Amount(100),
			Date:   record.Date{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
	}, nil)

	producer := &producerStub{}
	worker := NewWorker(NewGenerator(gateway), producer)

	raw, err := json.Marshal(ExportRequest{ChatID: 123, Token: "tok", Scope: ScopeIncomes, Sort: DefaultSort()})
	require.NoError(t, err)
	worker.Process(context.Background(), raw)

	require.Len(t, producer.produced, 1)
	var res ExportResult
	require.NoError(t, json.Unmarshal(producer.produced[0], &res))
	assert.Equal(t, int64(123), res.ChatID)
	assert.Empty(t, res.Err)
	assert.Contains(t, res.CSV, "Salary")
}

func Test_OnWorkerWithMalformedMessage_ShouldProduceNothing(t *testing.T) {
	m := minimock.NewController(t)
	gateway := mock.NewRecordsGatewayMock(m)

	producer := &producerStub{}
	worker := NewWorker(NewGenerator(gateway), producer)

	worker.Process(context.Background(), []byte("not json"))

	assert.Empty(t, producer.produced)
}

func Test_OnAcceptorWithFinishedExport_ShouldDeliverDocument(t *testing.T) {
	sender := &senderStub{}
	acceptor := NewAcceptor(sender)

	raw, err := json.Marshal(ExportResult{ChatID: 123, Scope: ScopeIncomes, Filename: "incomes_2024-03-01.csv", CSV: "Source,Amount,Date,User\n"})
	require.NoError(t, err)
	acceptor.Process(context.Background(), raw)

	require.Len(t, sender.documents, 1)
	assert.Equal(t, "incomes_2024-03-01.csv", sender.documents[0])
	assert.Equal(t, int64(123), sender.chatIDs[0])
	assert.Empty(t, sender.messages)
}

func Test_OnAcceptorWithFailedExport_ShouldApologize(t *testing.T) {
	sender := &senderStub{}
	acceptor := NewAcceptor(sender)

	raw, err := json.Marshal(ExportResult{ChatID: 123, Scope: ScopeIncomes, Err: "api is down"})
	require.NoError(t, err)
	acceptor.Process(context.Background(), raw)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, exportFailedMessage, sender.messages[0])
	assert.Empty(t, sender.documents)
}
