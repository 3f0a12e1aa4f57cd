package handler

import (
	"log"
	"net/http"
	"sync"

	config "forklift-rental-api/configs"
	"forklift-rental-api/pkg/handlers"
	"forklift-rental-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp はGinアプリケーションを初期化します。
// サーバーレス環境では、リクエストごとに初期化が走らないようsync.Onceで一度だけ実行します。
func setupApp() *gin.Engine {
	once.Do(func() {
		log.Printf("🟢 [setupApp] Initializing Gin application")

		// .envファイルはデプロイ先の環境変数設定から読み込まれるため、ここではgodotenvを呼び出しません。
		cfg := config.LoadConfig()

		// Ginルーターの初期化
		r := gin.Default()

		// サービスの初期化
		monitoringService := services.NewMonitoringService()
		catalogService := services.NewCatalogService()
		if err := catalogService.LoadRatesFromFile(cfg.RatesFile); err != nil {
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
		r.Use(monitoringService.LoggingMiddleware())
		r.Use(cors.Default())

		r.GET("/health", handlers.HealthCheck)

		v1 := r.Group("/api/v1")
		v1.Use(handlers.APIKeyAuth(cfg.APIKey))
		{
			admin := v1.Group("/admin")
			{
				admin.GET("/health-status", adminHandler.GetHealthStatus)
				admin.POST("/maintenance/start", adminHandler.StartMaintenance)
				admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
			}

			monitoring := v1.Group("/monitoring")
			{
				monitoring.GET("/logs", monitoringHandler.GetLogs)
			}

			rental := v1.Group("/rental")
			{
				rental.POST("/chat-input", chatHandler.ChatInput)
				rental.GET("/question", chatHandler.GetQuestion)
				rental.POST("/reset", chatHandler.Reset)

				rental.POST("/quote", quoteHandler.GenerateQuote)
				rental.GET("/quote/html", quoteHandler.ExportQuoteHTML)

				rental.GET("/forklifts", catalogHandler.ListForklifts)
				rental.GET("/rates", catalogHandler.ListRates)
				rental.POST("/rates/import", catalogHandler.ImportRates)
			}
		}

		app = r
	})
	return app
}

// Handler はサーバーレス関数のエントリーポイントです。
func Handler(w http.ResponseWriter, r *http.Request) {
	setupApp().ServeHTTP(w, r)
}
