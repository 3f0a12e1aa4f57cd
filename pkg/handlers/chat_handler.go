package handlers

import (
	"net/http"

	"forklift-rental-api/pkg/models"
	"forklift-rental-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChatHandler レンタル要件ヒアリングの会話エンドポイントです。
type ChatHandler struct {
	conversationService *services.ConversationService
}

// NewChatHandler は新しいChatHandlerを生成します。
func NewChatHandler(conversationService *services.ConversationService) *ChatHandler {
	return &ChatHandler{
		conversationService: conversationService,
	}
}

// ChatInput は会話への1回答を処理します。
// session_idが空の場合は新しい会話を開始し、最初の質問を返します。
func (h *ChatHandler) ChatInput(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "リクエストの形式が正しくありません: " + err.Error(),
		})
		return
	}

	// セッションIDが指定されていない場合は新しい会話を開始する
	if req.SessionID == "" {
		session := h.conversationService.GetOrCreateSession("")
		question, message := h.conversationService.CurrentQuestion(session.ID)

		response := models.ChatResponse{
			Success:   true,
			Valid:     true,
			SessionID: session.ID,
			Question:  question,
		}
		if question != nil {
			response.Feedback = question.Text
		} else {
			response.Feedback = message
			response.Complete = true
		}
		c.JSON(http.StatusOK, response)
		return
	}

	session := h.conversationService.GetOrCreateSession(req.SessionID)
	valid, feedback, complete := h.conversationService.ProcessAnswer(session.ID, req.Message)
	question, _ := h.conversationService.CurrentQuestion(session.ID)

	c.JSON(http.StatusOK, models.ChatResponse{
		Success:   true,
		Valid:     valid,
		Feedback:  feedback,
		SessionID: session.ID,
		Complete:  complete,
		Question:  question,
	})
}

// GetQuestion は現在の質問を返します。
// 会話が完了している場合は完了メッセージを返します。
func (h *ChatHandler) GetQuestion(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "session_idが必要です。",
		})
		return
	}

	if _, ok := h.conversationService.GetSession(sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "セッションが見つかりません。",
		})
		return
	}

	question, message := h.conversationService.CurrentQuestion(sessionID)
	if question == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"complete": true,
			"message":  message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"complete": false,
		"question": question,
	})
}

// Reset は会話を最初からやり直します。回答と見積もりは破棄されます。
func (h *ChatHandler) Reset(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "session_idが必要です。",
		})
		return
	}

	if !h.conversationService.ResetSession(req.SessionID) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "セッションが見つかりません。",
		})
		return
	}

	question, _ := h.conversationService.CurrentQuestion(req.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "会話をリセットしました。",
		"question": question,
	})
}
