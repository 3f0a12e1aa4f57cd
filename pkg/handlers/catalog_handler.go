package handlers

import (
	"log"
	"net/http"

	"forklift-rental-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 機種カタログとレートスケジュールのエンドポイントです。
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler は新しいCatalogHandlerを生成します。
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListForklifts は全機種の仕様を返します。
func (h *CatalogHandler) ListForklifts(c *gin.Context) {
	specs := h.catalogService.ListForklifts()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"forklifts": specs,
		"count":     len(specs),
	})
}

// ListRates は現在のレートスケジュールを返します。
func (h *CatalogHandler) ListRates(c *gin.Context) {
	rates := h.catalogService.ListRates()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"rates":   rates,
		"count":   len(rates),
	})
}

// ImportRates はアップロードされたCSV/Excelファイルでレートスケジュールを
// 置き換えます。解析に失敗した場合は既存のスケジュールを維持します。
func (h *CatalogHandler) ImportRates(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ファイルの取得に失敗しました。",
		})
		return
	}
	defer file.Close()

	count, err := h.catalogService.ReplaceRates(file, fileHeader.Filename)
	if err != nil {
		log.Printf("⚠️ レートのインポートに失敗: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	log.Printf("📊 レートスケジュールを更新しました: %s (%d件)", fileHeader.Filename, count)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "レートスケジュールを更新しました。",
		"count":   count,
	})
}
