package main

import (
	"fmt"

	"tube-go/internal/api/handler"
	"tube-go/internal/api/middleware"
	"tube-go/internal/api/router"
	"tube-go/internal/cache"
	"tube-go/internal/config"
	"tube-go/internal/infra/database"
	infraKafka "tube-go/internal/infra/kafka"
	infraMinio "tube-go/internal/infra/minio"
	infraRedis "tube-go/internal/infra/redis"
	"tube-go/internal/model"
	"tube-go/internal/repository"
	"tube-go/internal/service"
	"tube-go/pkg/auth"
	"tube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	// 自动迁移数据库表
	if err := database.AutoMigrate(db,
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.View{},
		&model.Reaction{},
		&model.Subscription{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	rdb, err := infraRedis.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer rdb.Close()

	// 初始化MinIO
	minioClient, err := infraMinio.New(&cfg.MinIO)
	if err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	producer := infraKafka.NewProducer(&cfg.Kafka)
	defer producer.Close()

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	viewRepo := repository.NewViewRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	statsCache := cache.NewVideoStatsCache(rdb, cache.DefaultStatsTTL)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireDuration(), cfg.App.Name)
	denylist := auth.NewDenylist(rdb)
	verifier := auth.NewGoogleVerifier(cfg.Google.ClientID)

	authService := service.NewAuthService(userRepo, verifier, tokens, denylist)
	videoService := service.NewVideoService(videoRepo, statsCache)
	feedService := service.NewFeedService(videoRepo, viewRepo, reactionRepo, commentRepo, subscriptionRepo, statsCache)
	reactionService := service.NewReactionService(reactionRepo, videoRepo, statsCache, producer)
	viewService := service.NewViewService(viewRepo, videoRepo, statsCache, producer)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, producer)
	commentService := service.NewCommentService(commentRepo, videoRepo, statsCache, producer)
	userService := service.NewUserService(userRepo, videoRepo, subscriptionRepo, feedService)
	mediaService := service.NewMediaService(minioClient, &cfg.MinIO)

	authHandler := handler.NewAuthHandler(authService, subscriptionService)
	userHandler := handler.NewUserHandler(userService, subscriptionService)
	videoHandler := handler.NewVideoHandler(videoService, feedService, reactionService, viewService)
	commentHandler := handler.NewCommentHandler(commentService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, videoHandler, commentHandler, mediaHandler,
		middleware.AuthRequired(tokens, denylist),
		middleware.AuthOptional(tokens, denylist),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Strings("kafka", cfg.Kafka.Brokers),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
