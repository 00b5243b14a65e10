package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
)

const syncTopic = "store-sync-events"

type SyncEvent struct {
	Type      string    `json:"type"`
	Shop      string    `json:"shop"`
	Entity    string    `json:"entity"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits sync events to Kafka. A nil Publisher is valid and
// drops everything, so callers never branch on whether Kafka is
// configured.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, logger *logger.Logger) *Publisher {
	if brokers == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  syncTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// SyncCompleted publishes a completion event for one sync phase.
// Publish failures are logged, never returned: events are advisory and
// must not fail a sync.
func (p *Publisher) SyncCompleted(shop, entity string, rows int) {
	if p == nil {
		return
	}

	event := SyncEvent{
		Type:      "sync.completed",
		Shop:      shop,
		Entity:    entity,
		Rows:      rows,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal sync event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(shop),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("Failed to publish sync event: %v", err)
		return
	}
	p.logger.Debug("Published sync event: %s %s rows=%d", shop, entity, rows)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
