package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"forklift-rental-api/pkg/models"
	"forklift-rental-api/pkg/units"

	"github.com/google/uuid"
)

// 会話完了時のメッセージ
const (
	completionMessage      = "All questions answered. Ready to recommend a forklift."
	allAnsweredFeedback    = "Thank you for providing all the information. I'll recommend a suitable forklift."
	alreadyCompleteMessage = "All questions have already been answered."
)

// Conversation 1セッション分の会話状態
type Conversation struct {
	CurrentIndex int                    // 質問シーケンスへの0始まりカーソル
	Answers      map[string]interface{} // 質問ID → 正規化済みの回答
	Complete     bool
}

// Session 1ユーザーセッション。会話状態と生成済みの見積もりを保持します。
type Session struct {
	ID           string
	Conversation *Conversation
	QuoteResult  *models.QuoteResult    // 最後に生成された見積もり
	Formatted    *models.FormattedQuote // 表示用の整形済み見積もり
	CreatedAt    time.Time
}

// ConversationService レンタル要件をヒアリングする会話フローを管理します。
// セッションごとに独立した会話状態を持ちます。
type ConversationService struct {
	questions         []models.Question
	allowSkipOptional bool // 任意の質問を空回答でスキップできるか
	sessions          map[string]*Session
	mu                sync.RWMutex
}

// NewConversationService は質問シーケンスを定義した
// ConversationServiceを生成します。
func NewConversationService(allowSkipOptional bool) *ConversationService {
	return &ConversationService{
		questions:         defaultQuestions(),
		allowSkipOptional: allowSkipOptional,
		sessions:          make(map[string]*Session),
	}
}

// defaultQuestions はレンタル要件ヒアリングの質問シーケンスを返します。
// 順序は会話の進行順そのものです。
func defaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:       "load_weight",
			Text:     "What is the weight of the heaviest load you need to lift?",
			FollowUp: "Please specify the weight (e.g., 2 tons, 2000 kg)",
			Kind:     models.KindWeight,
			Required: true,
		},
		{
			ID:       "rental_period",
			Text:     "How long do you need to rent the forklift for?",
			FollowUp: "Please specify the number of days",
			Kind:     models.KindDuration,
			Required: true,
		},
		{
			ID:       "indoor_outdoor",
			Text:     "Will you be using the forklift indoors, outdoors, or both?",
			Options:  []string{"indoor", "outdoor", "both"},
			Kind:     models.KindChoice,
			Required: true,
		},
		{
			ID:       "lift_height",
			Text:     "What is the maximum height you need to lift to?",
			FollowUp: "Please specify the height (e.g., 3 meters, 10 feet)",
			Kind:     models.KindHeight,
			Required: false,
		},
		{
			ID:       "special_requirements",
			Text:     "Do you have any special requirements or attachments needed?",
			Kind:     models.KindFreeText,
			Required: false,
		},
	}
}

// Questions は質問シーケンスを返します。
func (s *ConversationService) Questions() []models.Question {
	return s.questions
}

// GetOrCreateSession はセッションを取得します。IDが空または未知の場合は
// 新しいセッションを生成します。
func (s *ConversationService) GetOrCreateSession(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}

	if id == "" {
		id = uuid.New().String()
	}

	session := &Session{
		ID: id,
		Conversation: &Conversation{
			Answers: make(map[string]interface{}),
		},
		CreatedAt: time.Now(),
	}
	s.sessions[id] = session
	return session
}

// GetSession は既存のセッションを取得します。
func (s *ConversationService) GetSession(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// ResetSession は会話を初期状態に戻し、回答と見積もりを破棄します。
func (s *ConversationService) ResetSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false
	}

	session.Conversation = &Conversation{
		Answers: make(map[string]interface{}),
	}
	session.QuoteResult = nil
	session.Formatted = nil
	return true
}

// CurrentQuestion はセッションの現在の質問を返します。
// 会話が完了している場合は質問の代わりに完了メッセージを返します。
// インデックスが末尾を超えているのに完了フラグが立っていない場合は
// フラグを立てて自己修復します。
func (s *ConversationService) CurrentQuestion(sessionID string) (*models.Question, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, completionMessage
	}

	conv := session.Conversation
	if conv.Complete {
		return nil, completionMessage
	}

	if conv.CurrentIndex < len(s.questions) {
		q := s.questions[conv.CurrentIndex]
		return &q, ""
	}

	conv.Complete = true
	return nil, completionMessage
}

// ProcessAnswer は現在の質問への回答を処理します。
// 有効な回答は正規化して格納し、次の質問へ進みます。
// 無効な回答では状態を変更せず、再入力のヒントを返します。
func (s *ConversationService) ProcessAnswer(sessionID, answer string) (valid bool, feedback string, complete bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false, "Unknown session. Please start a new conversation.", false
	}

	conv := session.Conversation
	if conv.Complete {
		// 完了後の回答はエラーにせず、完了済みであることを伝える
		return true, alreadyCompleteMessage, true
	}

	question := s.questions[conv.CurrentIndex]

	// 任意の質問は空回答でスキップ可能（設定で有効な場合のみ）
	if s.allowSkipOptional && !question.Required && strings.TrimSpace(answer) == "" {
		return s.advance(conv, "Question skipped.")
	}

	if !validateAnswer(question, answer) {
		return false, invalidFeedback(question), false
	}

	conv.Answers[question.ID] = normalizeAnswer(question, answer)
	return s.advance(conv, "Thank you.")
}

// advance はカーソルを次の質問へ進め、次のプロンプトまたは
// 完了メッセージを組み立てます。
func (s *ConversationService) advance(conv *Conversation, prefix string) (bool, string, bool) {
	conv.CurrentIndex++

	if conv.CurrentIndex >= len(s.questions) {
		conv.Complete = true
		return true, allAnsweredFeedback, true
	}

	next := s.questions[conv.CurrentIndex]
	text := next.Text
	if len(next.Options) > 0 {
		text += fmt.Sprintf(" (%s)", strings.Join(next.Options, ", "))
	}
	return true, fmt.Sprintf("%s %s", prefix, text), false
}

// Requirements は収集済みの正規化された要件を返します。
func (s *ConversationService) Requirements(sessionID string) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return map[string]interface{}{}
	}

	requirements := make(map[string]interface{}, len(session.Conversation.Answers))
	for k, v := range session.Conversation.Answers {
		requirements[k] = v
	}
	return requirements
}

// IsComplete は全質問への回答が完了したかを返します。
func (s *ConversationService) IsComplete(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	return session.Conversation.Complete
}

// StoreQuote は生成済みの見積もりをセッションに保存します。
func (s *ConversationService) StoreQuote(sessionID string, result *models.QuoteResult, formatted *models.FormattedQuote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		session.QuoteResult = result
		session.Formatted = formatted
	}
}

// StoredQuote はセッションに保存済みの見積もりを返します。
// 見積もりの読み取りはStoreQuoteと同じロックで保護します。
func (s *ConversationService) StoredQuote(sessionID string) (*models.QuoteResult, *models.FormattedQuote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil, false
	}
	return session.QuoteResult, session.Formatted, true
}

// SessionCount は現在保持しているセッション数を返します。
func (s *ConversationService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// validateAnswer は質問の種類に応じて回答を検証します。
func validateAnswer(q models.Question, answer string) bool {
	switch q.Kind {
	case models.KindWeight:
		return units.ValidateWeight(answer)
	case models.KindDuration:
		return units.ValidateDuration(answer)
	case models.KindChoice:
		// 大文字小文字は区別しない
		for _, option := range q.Options {
			if strings.EqualFold(strings.TrimSpace(answer), option) {
				return true
			}
		}
		return false
	case models.KindHeight:
		return units.ValidateHeight(answer)
	default:
		// 自由入力は常に有効
		return true
	}
}

// normalizeAnswer は回答を標準形式に正規化します。
func normalizeAnswer(q models.Question, answer string) interface{} {
	switch q.Kind {
	case models.KindWeight:
		if value, ok := units.NormalizeWeight(answer); ok {
			return value
		}
		return answer
	case models.KindDuration:
		if days, ok := units.NormalizeDuration(answer); ok {
			return days
		}
		return answer
	case models.KindChoice:
		return strings.ToLower(strings.TrimSpace(answer))
	case models.KindHeight:
		if value, ok := units.NormalizeHeight(answer); ok {
			return value
		}
		return answer
	default:
		return answer
	}
}

// invalidFeedback は無効な回答への再入力メッセージを組み立てます。
// フォローアップヒント、選択肢、汎用メッセージの優先順で使用します。
func invalidFeedback(q models.Question) string {
	if q.FollowUp != "" {
		return fmt.Sprintf("Invalid input. %s", q.FollowUp)
	}
	if len(q.Options) > 0 {
		return fmt.Sprintf("Invalid input. Please select one of: %s", strings.Join(q.Options, ", "))
	}
	return "Invalid input. Please try again."
}
