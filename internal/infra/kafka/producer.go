package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tube-go/internal/config"
	"tube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// 互动事件类型
const (
	EventView         = "view"
	EventReaction     = "reaction"
	EventComment      = "comment"
	EventSubscription = "subscription"
)

// EngagementEvent 互动事件消息体。
// 写库成功后发布，worker 消费后使对应视频的统计缓存失效。
type EngagementEvent struct {
	Type       string `json:"type"`
	VideoID    int64  `json:"video_id,omitempty"`
	ChannelID  int64  `json:"channel_id,omitempty"`
	UserID     *int64 `json:"user_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

// Producer 互动事件生产者
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 初始化 Kafka 生产者
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return &Producer{
		writer: writer,
		topic:  cfg.Topics["engagement_events"],
	}
}

// PublishEngagement 发布互动事件
func (p *Producer) PublishEngagement(ctx context.Context, ev *EngagementEvent) error {
	if ev.OccurredAt == 0 {
		ev.OccurredAt = time.Now().Unix()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("video-%d", ev.VideoID)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish engagement event: %w", err)
	}

	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
