package service

import (
	"context"
	"time"

	infraKafka "tube-go/internal/infra/kafka"
	"tube-go/pkg/logger"

	"go.uber.org/zap"
)

// EventSink 互动事件发布端。事件只驱动缓存失效，发布失败不影响请求结果；
// 测试中传 nil 即可关闭发布。
type EventSink interface {
	PublishEngagement(ctx context.Context, ev *infraKafka.EngagementEvent) error
}

// publishEvent 尽力发布互动事件，失败记日志后继续
func publishEvent(sink EventSink, ev *infraKafka.EngagementEvent) {
	if sink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := sink.PublishEngagement(ctx, ev); err != nil {
		logger.Warn("Failed to publish engagement event",
			zap.String("type", ev.Type),
			zap.Int64("video_id", ev.VideoID),
			zap.Error(err),
		)
	}
}
