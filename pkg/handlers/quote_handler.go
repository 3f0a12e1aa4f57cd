package handlers

import (
	"log"
	"net/http"

	"forklift-rental-api/pkg/models"
	"forklift-rental-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// QuoteHandler 見積もりの生成とエクスポートのエンドポイントです。
type QuoteHandler struct {
	conversationService *services.ConversationService
	matcherService      *services.MatcherService
	quoteService        *services.QuoteService
}

// NewQuoteHandler は新しいQuoteHandlerを生成します。
func NewQuoteHandler(
	conversationService *services.ConversationService,
	matcherService *services.MatcherService,
	quoteService *services.QuoteService,
) *QuoteHandler {
	return &QuoteHandler{
		conversationService: conversationService,
		matcherService:      matcherService,
		quoteService:        quoteService,
	}
}

// GenerateQuote は完了した会話の要件から見積もりを生成します。
// 条件を満たす機種がない場合もHTTPエラーにはせず、successフラグで返します。
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "session_idが必要です。",
		})
		return
	}

	if _, ok := h.conversationService.GetSession(req.SessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "セッションが見つかりません。",
		})
		return
	}

	if !h.conversationService.IsComplete(req.SessionID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "まだ全ての質問に回答していません。",
		})
		return
	}

	// 要件のマッチング → 見積もり生成 → 表示用整形
	requirements := h.conversationService.Requirements(req.SessionID)
	match := h.matcherService.MatchForklift(requirements)
	result := h.quoteService.GenerateQuote(match)

	if !result.Success {
		log.Printf("⚠️ 見積もり生成に失敗: SessionID=%s, %s", req.SessionID, result.Message)
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": result.Message,
		})
		return
	}

	formatted := h.quoteService.FormatQuoteForDisplay(result)

	// 後からHTMLエクスポートできるようセッションに保存する
	h.conversationService.StoreQuote(req.SessionID, &result, formatted.FormattedQuote)

	log.Printf("✅ 見積もりを生成しました: SessionID=%s, Quote=%s", req.SessionID, result.Quote.QuoteNumber)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"quote":            result.Quote,
		"brochure_excerpt": result.BrochureExcerpt,
		"formatted_quote":  formatted.FormattedQuote,
	})
}

// ExportQuoteHTML は生成済みの見積もりを印刷可能なHTMLドキュメントとして返します。
func (h *QuoteHandler) ExportQuoteHTML(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "session_idが必要です。",
		})
		return
	}

	_, formatted, ok := h.conversationService.StoredQuote(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "セッションが見つかりません。",
		})
		return
	}

	if formatted == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "このセッションにはまだ見積もりがありません。先に見積もりを生成してください。",
		})
		return
	}

	html, err := services.RenderQuoteHTML(formatted)
	if err != nil {
		log.Printf("HTML生成エラー: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "HTMLの生成に失敗しました。",
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
