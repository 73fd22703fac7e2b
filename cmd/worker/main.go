package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tube-go/internal/cache"
	"tube-go/internal/config"
	infraKafka "tube-go/internal/infra/kafka"
	infraRedis "tube-go/internal/infra/redis"
	"tube-go/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	rdb, err := infraRedis.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer rdb.Close()

	statsCache := cache.NewVideoStatsCache(rdb, cache.DefaultStatsTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["engagement_events"]
	groupID := cfg.Kafka.GroupID

	logger.Info("Engagement worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	// 其他实例写入互动后发布事件，这里统一失效对应视频的统计缓存
	handler := func(ev *infraKafka.EngagementEvent) error {
		if err := statsCache.Invalidate(ctx, ev.VideoID); err != nil {
			return err
		}
		logger.Debug("Video stats cache invalidated",
			zap.String("event", ev.Type),
			zap.Int64("video_id", ev.VideoID),
		)
		return nil
	}

	infraKafka.StartEngagementConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)

	logger.Info("Engagement worker stopped")
}
