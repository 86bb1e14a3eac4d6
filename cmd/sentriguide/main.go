package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sentriguide/sentriguide-go/internal/config"
	"github.com/sentriguide/sentriguide-go/internal/handler"
	"github.com/sentriguide/sentriguide-go/internal/helpcenter"
	"github.com/sentriguide/sentriguide-go/internal/middleware"
	"github.com/sentriguide/sentriguide-go/internal/service"
	"github.com/sentriguide/sentriguide-go/pkg/logger"
	redispkg "github.com/sentriguide/sentriguide-go/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	// 加载配置，路径可由第一个参数覆盖
	configPath := "configs/sentriguide.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("sentriguide 服务启动中...")

	// Redis 镜像可选，连不上只降级不退出
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redispkg.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("Redis 不可用，会话镜像已禁用", zap.Error(err))
			redisClient = nil
		}
	}

	// 帮助中心抓取客户端
	helpClient := helpcenter.NewClient(cfg.HelpCenter.BaseURL, cfg.HelpCenter.RequestTimeout.Std(), zapLogger)

	// 业务服务
	sessionService := service.NewSessionService(redisClient, zapLogger)
	summaryService := service.NewSummaryService(zapLogger)
	sentimentService := service.NewSentimentService(zapLogger)
	confidenceService := service.NewConfidenceService(zapLogger)
	knowledgeService := service.NewKnowledgeService(helpClient, zapLogger)
	coachingService := service.NewCoachingService(zapLogger)
	metricsService := service.NewMetricsService(zapLogger)

	// 仪表盘集线器作为面板推送出口
	dashboardHub := handler.NewDashboardHub(sessionService, zapLogger)

	analysisService := service.NewAnalysisService(sessionService,
		summaryService, sentimentService, confidenceService,
		knowledgeService, coachingService, metricsService,
		dashboardHub, cfg.Analysis.StagePause.Std(), zapLogger)

	apiHandler := handler.NewAPIHandler(sessionService, analysisService, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		api.POST("/conversation/customer", apiHandler.SubmitCustomerMessage)
		api.POST("/conversation/engineer", apiHandler.SubmitEngineerMessage)
		api.POST("/conversation/end", apiHandler.EndConversation)
		api.GET("/panels", apiHandler.GetPanels)
		api.GET("/history", apiHandler.ListSolutions)
		api.GET("/history/:index", apiHandler.GetSolution)
		api.POST("/history/clear", apiHandler.ClearSolutions)
		api.GET("/health", apiHandler.Health)
	}

	r.GET("/ws/dashboard", dashboardHub.HandleDashboard)

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("sentriguide 服务启动成功",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("redisMirror", redisClient != nil))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
