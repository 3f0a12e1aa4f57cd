package handlers

import (
	"net/http"

	"forklift-rental-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler レンタルAPIのリクエストログ集計のハンドラです。
type MonitoringHandler struct {
	monitoringService *services.MonitoringService
}

// NewMonitoringHandler は新しいMonitoringHandlerを生成します。
func NewMonitoringHandler(monitoringService *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringService: monitoringService,
	}
}

// periodToHours は期間クエリを時間数に変換します。不明な値は24時間扱いです。
func periodToHours(period string) int {
	switch period {
	case "1h":
		return 1
	case "24h":
		return 24
	case "7d":
		return 24 * 7
	case "30d":
		return 24 * 30
	default:
		return 24
	}
}

// GetLogs は指定期間のリクエストログを集計して返します。
// 記録対象はレンタル問い合わせ系のエンドポイントです（管理系は除外済み）。
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	period := c.DefaultQuery("period", "24h")
	data := h.monitoringService.GetDashboardData(periodToHours(period))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"period":  period,
		"data":    data,
	})
}
