package cronjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"go-healthwatch/types"
)

// NotificationSink receives every notification the queue creates.
type NotificationSink interface {
	Publish(ctx context.Context, entry types.AlertEntry) error
}

type LogSink struct{}

func (LogSink) Publish(_ context.Context, entry types.AlertEntry) error {
	log.WithField("link", entry.Link).Infof("Notification %d: %s", entry.ID, entry.TitleKey)
	return nil
}

// Notifications arrive one at a time; don't hold them for a batch.
const kafkaBatchTimeout = 10 * time.Millisecond

// KafkaSink writes each notification as JSON keyed by its id.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: kafkaBatchTimeout,
		},
	}
}

func (k *KafkaSink) Publish(ctx context.Context, entry types.AlertEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(entry.ID, 10)),
		Value: value,
		Time:  entry.CreatedAt,
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
