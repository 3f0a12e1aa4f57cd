package main

import (
	"log"

	config "forklift-rental-api/configs"
	"forklift-rental-api/pkg/handlers"
	"forklift-rental-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .envファイルを読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// 設定の読み込み
	cfg := config.LoadConfig()

	// Ginルーターの初期化
	r := gin.Default()

	// サービスの初期化
	monitoringService := services.NewMonitoringService()
	catalogService := services.NewCatalogService()
	if err := catalogService.LoadRatesFromFile(cfg.RatesFile); err != nil {
		// レートファイルが読めなくてもフォールバックレートで起動を継続する
		log.Printf("⚠️ レートファイルの読み込みに失敗したため、フォールバックレートを使用します: %v", err)
	}
	conversationService := services.NewConversationService(cfg.AllowSkipOptional)
	matcherService := services.NewMatcherService(catalogService)
	quoteService := services.NewQuoteService()

	// ハンドラーの初期化
	chatHandler := handlers.NewChatHandler(conversationService)
	quoteHandler := handlers.NewQuoteHandler(conversationService, matcherService, quoteService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	adminHandler := handlers.NewAdminHandler(cfg, conversationService, catalogService)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// ミドルウェアの登録
	r.Use(monitoringService.LoggingMiddleware()) // ロギングミドルウェアをグローバルに適用
	r.Use(cors.Default())

	// ヘルスチェックエンドポイント
	r.GET("/health", handlers.HealthCheck)

	// APIバージョン1のルートグループ
	v1 := r.Group("/api/v1")
	v1.Use(handlers.APIKeyAuth(cfg.APIKey))
	{
		// 管理者向けAPI
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		// モニタリングAPI
		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		// レンタル問い合わせAPI
		rental := v1.Group("/rental")
		{
			// 会話フロー
			rental.POST("/chat-input", chatHandler.ChatInput)
			rental.GET("/question", chatHandler.GetQuestion)
			rental.POST("/reset", chatHandler.Reset)

			// 見積もり
			rental.POST("/quote", quoteHandler.GenerateQuote)
			rental.GET("/quote/html", quoteHandler.ExportQuoteHTML) // 印刷用HTMLエクスポート

			// カタログ
			rental.GET("/forklifts", catalogHandler.ListForklifts)
			rental.GET("/rates", catalogHandler.ListRates)
			rental.POST("/rates/import", catalogHandler.ImportRates)
		}
	}

	log.Printf("Starting Forklift Rental API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
