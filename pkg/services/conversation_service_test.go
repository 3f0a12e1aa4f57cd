package services

import (
	"strings"
	"testing"

	"forklift-rental-api/pkg/models"
)

func TestGetOrCreateSession(t *testing.T) {
	service := NewConversationService(false)

	// 空のIDでは新しいセッションが生成される
	session := service.GetOrCreateSession("")
	if session.ID == "" {
		t.Fatal("New session should have a generated ID")
	}

	// 同じIDでは同じセッションが返る
	again := service.GetOrCreateSession(session.ID)
	if again != session {
		t.Error("GetOrCreateSession with existing ID should return the same session")
	}

	// 未知のIDではそのIDでセッションが生成される
	custom := service.GetOrCreateSession("my-session")
	if custom.ID != "my-session" {
		t.Errorf("Expected session ID 'my-session', got %q", custom.ID)
	}
}

func TestCurrentQuestionInitial(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	question, _ := service.CurrentQuestion(session.ID)
	if question == nil {
		t.Fatal("Expected a question for a fresh conversation")
	}
	if question.ID != "load_weight" {
		t.Errorf("First question should be load_weight, got %q", question.ID)
	}
}

func TestProcessAnswerFullFlow(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	answers := []string{"3 tons", "7 days", "outdoor", "3 meters", "Need side shifter"}
	for i, answer := range answers {
		valid, feedback, _ := service.ProcessAnswer(session.ID, answer)
		if !valid {
			t.Fatalf("Answer %d (%q) should be valid, feedback: %s", i, answer, feedback)
		}
	}

	if !service.IsComplete(session.ID) {
		t.Error("Conversation should be complete after all 5 answers")
	}

	requirements := service.Requirements(session.ID)
	if len(requirements) != 5 {
		t.Fatalf("Expected 5 stored answers, got %d", len(requirements))
	}

	// 正規化された値を確認
	if requirements["load_weight"] != 3.0 {
		t.Errorf("Expected load_weight 3.0, got %v", requirements["load_weight"])
	}
	if requirements["rental_period"] != 7 {
		t.Errorf("Expected rental_period 7, got %v", requirements["rental_period"])
	}
	if requirements["indoor_outdoor"] != "outdoor" {
		t.Errorf("Expected indoor_outdoor 'outdoor', got %v", requirements["indoor_outdoor"])
	}
	if requirements["lift_height"] != 3.0 {
		t.Errorf("Expected lift_height 3.0, got %v", requirements["lift_height"])
	}
	if requirements["special_requirements"] != "Need side shifter" {
		t.Errorf("Expected special_requirements preserved, got %v", requirements["special_requirements"])
	}
}

func TestProcessAnswerInvalidDoesNotAdvance(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	valid, feedback, _ := service.ProcessAnswer(session.ID, "very heavy")
	if valid {
		t.Fatal("Answer without a number should be invalid for load_weight")
	}

	// フォローアップヒントが含まれる
	if !strings.Contains(feedback, "Please specify the weight") {
		t.Errorf("Feedback should contain the follow-up hint, got %q", feedback)
	}

	// カーソルは進まず、回答も保存されない
	question, _ := service.CurrentQuestion(session.ID)
	if question == nil || question.ID != "load_weight" {
		t.Error("Invalid answer should not advance the current question")
	}
	if len(service.Requirements(session.ID)) != 0 {
		t.Error("Invalid answer should not store a value")
	}
}

func TestProcessAnswerChoiceFeedback(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")
	service.ProcessAnswer(session.ID, "7 days")

	// 選択肢にない回答は選択肢一覧を提示する
	valid, feedback, _ := service.ProcessAnswer(session.ID, "underwater")
	if valid {
		t.Fatal("Answer outside the option set should be invalid")
	}
	if !strings.Contains(feedback, "indoor, outdoor, both") {
		t.Errorf("Feedback should list the options, got %q", feedback)
	}
}

func TestProcessAnswerChoiceCaseInsensitive(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")
	service.ProcessAnswer(session.ID, "7 days")

	// 大文字でも受理され、小文字で保存される
	valid, _, _ := service.ProcessAnswer(session.ID, "OUTDOOR")
	if !valid {
		t.Fatal("Uppercase option should be accepted")
	}

	requirements := service.Requirements(session.ID)
	if requirements["indoor_outdoor"] != "outdoor" {
		t.Errorf("Choice should be stored lowercase, got %v", requirements["indoor_outdoor"])
	}
}

func TestProcessAnswerNextPromptIncludesOptions(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")

	// 次の質問が選択肢付きの場合、プロンプトに選択肢を含める
	_, feedback, _ := service.ProcessAnswer(session.ID, "7 days")
	if !strings.Contains(feedback, "(indoor, outdoor, both)") {
		t.Errorf("Next prompt should include inline options, got %q", feedback)
	}
}

func TestProcessAnswerAfterComplete(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	for _, answer := range []string{"3 tons", "7 days", "outdoor", "3 meters", "none"} {
		service.ProcessAnswer(session.ID, answer)
	}

	// 完了後の回答はエラーではなく完了済みメッセージを返す
	valid, feedback, complete := service.ProcessAnswer(session.ID, "another answer")
	if !valid || !complete {
		t.Error("Answering after completion should be a no-op reporting completion")
	}
	if !strings.Contains(feedback, "already been answered") {
		t.Errorf("Expected already-answered feedback, got %q", feedback)
	}

	// 追加の回答は保存されない
	if len(service.Requirements(session.ID)) != 5 {
		t.Error("Answer after completion should not be stored")
	}
}

func TestCurrentQuestionSentinelAfterComplete(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	for _, answer := range []string{"3 tons", "7 days", "outdoor", "3 meters", "none"} {
		service.ProcessAnswer(session.ID, answer)
	}

	question, message := service.CurrentQuestion(session.ID)
	if question != nil {
		t.Error("Completed conversation should not return a question")
	}
	if !strings.Contains(message, "All questions answered") {
		t.Errorf("Expected completion message, got %q", message)
	}
}

func TestCurrentQuestionSelfHealing(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	// インデックスが末尾を超えているのに完了フラグが立っていない状態を作る
	service.mu.Lock()
	session.Conversation.CurrentIndex = len(service.questions)
	service.mu.Unlock()

	question, message := service.CurrentQuestion(session.ID)
	if question != nil {
		t.Error("Out-of-range cursor should return the sentinel message")
	}
	if message == "" {
		t.Error("Sentinel message should not be empty")
	}
	if !service.IsComplete(session.ID) {
		t.Error("CurrentQuestion should set the completion flag when the cursor has run past the end")
	}
}

func TestResetSession(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")
	service.ProcessAnswer(session.ID, "7 days")

	if !service.ResetSession(session.ID) {
		t.Fatal("ResetSession should succeed for an existing session")
	}

	if service.IsComplete(session.ID) {
		t.Error("Reset conversation should not be complete")
	}
	if len(service.Requirements(session.ID)) != 0 {
		t.Error("Reset should discard all stored answers")
	}

	question, _ := service.CurrentQuestion(session.ID)
	if question == nil || question.ID != "load_weight" {
		t.Error("Reset should return to the first question")
	}

	// 未知のセッションのリセットは失敗する
	if service.ResetSession("no-such-session") {
		t.Error("ResetSession should fail for an unknown session")
	}
}

func TestSkipOptionalQuestionDisabled(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")
	service.ProcessAnswer(session.ID, "7 days")
	service.ProcessAnswer(session.ID, "both")

	// トグルが無効の場合、任意の質問でも空回答は通常の検証にかかる
	valid, _, _ := service.ProcessAnswer(session.ID, "")
	if valid {
		t.Error("Empty answer for lift_height should be invalid when skipping is disabled")
	}
}

func TestSkipOptionalQuestionEnabled(t *testing.T) {
	service := NewConversationService(true)
	session := service.GetOrCreateSession("")

	service.ProcessAnswer(session.ID, "3 tons")
	service.ProcessAnswer(session.ID, "7 days")
	service.ProcessAnswer(session.ID, "both")

	// トグルが有効の場合、任意の質問は空回答でスキップできる
	valid, feedback, _ := service.ProcessAnswer(session.ID, "")
	if !valid {
		t.Fatalf("Empty answer should skip the optional lift_height question, feedback: %s", feedback)
	}

	// スキップした質問の値は保存されない
	requirements := service.Requirements(session.ID)
	if _, exists := requirements["lift_height"]; exists {
		t.Error("Skipped question should not store a value")
	}

	// 必須の質問は空回答でスキップできない
	reset := NewConversationService(true)
	other := reset.GetOrCreateSession("")
	valid, _, _ = reset.ProcessAnswer(other.ID, "")
	if valid {
		t.Error("Required question should not be skippable with an empty answer")
	}
}

func TestStoreQuote(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	service.StoreQuote(session.ID, nil, nil)

	// リセットで見積もりも破棄される
	service.ResetSession(session.ID)
	stored, _ := service.GetSession(session.ID)
	if stored.QuoteResult != nil || stored.Formatted != nil {
		t.Error("Reset should discard the stored quote")
	}
}

func TestStoredQuote(t *testing.T) {
	service := NewConversationService(false)
	session := service.GetOrCreateSession("")

	result := &models.QuoteResult{Success: true}
	formatted := &models.FormattedQuote{Title: "Forklift Rental Quote"}
	service.StoreQuote(session.ID, result, formatted)

	// 保存した見積もりはロック保護されたアクセサ経由で読み取れる
	gotResult, gotFormatted, ok := service.StoredQuote(session.ID)
	if !ok {
		t.Fatal("StoredQuote should find the session")
	}
	if gotResult != result || gotFormatted != formatted {
		t.Error("StoredQuote should return the stored quote values")
	}

	// 未知のセッションはfalseを返す
	if _, _, ok := service.StoredQuote("no-such-session"); ok {
		t.Error("StoredQuote should fail for an unknown session")
	}
}

func TestSessionCount(t *testing.T) {
	service := NewConversationService(false)

	if service.SessionCount() != 0 {
		t.Error("New service should have no sessions")
	}

	service.GetOrCreateSession("")
	service.GetOrCreateSession("")
	if count := service.SessionCount(); count != 2 {
		t.Errorf("SessionCount = %d, want 2", count)
	}

	// 既存IDの再取得ではセッションは増えない
	session := service.GetOrCreateSession("")
	service.GetOrCreateSession(session.ID)
	if count := service.SessionCount(); count != 3 {
		t.Errorf("SessionCount = %d, want 3", count)
	}
}
