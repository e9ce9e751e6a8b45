package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"tajer-be/internal/logger"
)

// Recorder publishes audit events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ctx context.Context, e Event)
	Close() error
}

// KafkaRecorder writes events to a Kafka topic, keyed by order id so all
// events of one order land in the same partition.
type KafkaRecorder struct {
	writer *kafka.Writer
}

func NewKafkaRecorder(brokers []string, topic string) *KafkaRecorder {
	return &KafkaRecorder{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (r *KafkaRecorder) Record(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	payload, err := json.Marshal(e)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to marshal audit event", zap.Error(err))
		return
	}

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID.String()),
		Value: payload,
	})
	if err != nil {
		// Best effort: the financial operation already committed.
		logger.FromCtx(ctx).Warn("failed to publish audit event",
			zap.String("type", string(e.Type)),
			zap.Error(err),
		)
	}
}

func (r *KafkaRecorder) Close() error {
	return r.writer.Close()
}

// LogRecorder is the fallback when no brokers are configured; it writes
// events to the application log instead.
type LogRecorder struct{}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (r *LogRecorder) Record(ctx context.Context, e Event) {
	logger.FromCtx(ctx).Info("audit event",
		zap.String("type", string(e.Type)),
		zap.String("order_id", e.OrderID.String()),
		zap.String("status", e.Status),
		zap.String("category", e.Category),
		zap.Float64("amount", e.Amount),
	)
}

func (r *LogRecorder) Close() error { return nil }
