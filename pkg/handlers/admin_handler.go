package handlers

import (
	"net/http"
	"sync/atomic"

	config "forklift-rental-api/configs"
	"forklift-rental-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// isMaintenanceMode はサーバーがメンテナンスモードかどうかを示します。
// atomic.Boolを使用して、スレッドセーフな読み書きを保証します。
var isMaintenanceMode atomic.Bool

// AdminHandler レンタルAPIの運用操作（メンテナンスモードと稼働状況の確認）の
// ハンドラです。
type AdminHandler struct {
	adminUsername       string
	adminPassword       string
	environment         string
	conversationService *services.ConversationService
	catalogService      *services.CatalogService
}

// NewAdminHandler は新しいAdminHandlerを生成します。
func NewAdminHandler(
	cfg *config.Config,
	conversationService *services.ConversationService,
	catalogService *services.CatalogService,
) *AdminHandler {
	return &AdminHandler{
		adminUsername:       cfg.AdminUsername,
		adminPassword:       cfg.AdminPassword,
		environment:         cfg.Environment,
		conversationService: conversationService,
		catalogService:      catalogService,
	}
}

// AdminCredentials は管理者認証のためのリクエストボディです。
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authorize は管理者認証を検証します。失敗時はエラーレスポンスを書き込みます。
func (h *AdminHandler) authorize(c *gin.Context) bool {
	var input AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ユーザー名とパスワードが必要です。",
		})
		return false
	}

	if input.Username != h.adminUsername || input.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "認証情報が正しくありません。",
		})
		return false
	}
	return true
}

// StartMaintenance はメンテナンスモードを開始します。
// モード中は新しい見積もり依頼を受け付けません（ヘルスチェックが503を返します）。
func (h *AdminHandler) StartMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	isMaintenanceMode.Store(true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "メンテナンスモードを開始しました。",
	})
}

// StopMaintenance はメンテナンスモードを停止します。
func (h *AdminHandler) StopMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	isMaintenanceMode.Store(false)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "メンテナンスモードを停止しました。",
	})
}

// GetHealthStatus はレンタルAPIの稼働状況を返します。
// メンテナンスモードに加えて、アクティブなセッション数とカタログの規模を含みます。
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"isMaintenanceMode": isMaintenanceMode.Load(),
		"environment":       h.environment,
		"activeSessions":    h.conversationService.SessionCount(),
		"forkliftModels":    len(h.catalogService.ListForklifts()),
		"rateEntries":       len(h.catalogService.ListRates()),
	})
}

// HealthCheck は外部のヘルスチェッカー（例: ロードバランサー）からのリクエストに応答します。
func HealthCheck(c *gin.Context) {
	if isMaintenanceMode.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": "Server is in maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "forklift-rental-api"})
}
