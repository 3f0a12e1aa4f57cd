package models

// QuestionKind 質問の種類（検証・正規化のディスパッチに使用）
type QuestionKind string

const (
	KindWeight   QuestionKind = "weight"    // 重量（トン/kg）
	KindDuration QuestionKind = "duration"  // 期間（日/週/月）
	KindChoice   QuestionKind = "choice"    // 固定選択肢
	KindHeight   QuestionKind = "height"    // 高さ（メートル/フィート）
	KindFreeText QuestionKind = "free_text" // 自由入力（常に有効）
)

// Question 会話フローの1つの質問
type Question struct {
	ID       string       `json:"id"`                  // 質問ID（回答の格納キー）
	Text     string       `json:"question"`            // 質問文
	FollowUp string       `json:"follow_up,omitempty"` // 再入力を促すヒント
	Options  []string     `json:"options,omitempty"`   // 固定選択肢（KindChoiceのみ）
	Kind     QuestionKind `json:"kind"`                // 検証・正規化の種類
	Required bool         `json:"required"`            // 必須フラグ
}

// ChatRequest 会話への回答リクエスト
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"` // セッションIDで会話を紐付け
}

// ChatResponse 会話の応答
type ChatResponse struct {
	Success   bool      `json:"success"`
	Valid     bool      `json:"valid"`    // 回答が受理されたか
	Feedback  string    `json:"feedback"` // 確認メッセージまたはエラーメッセージ
	SessionID string    `json:"session_id"`
	Complete  bool      `json:"complete"`           // 全質問への回答が完了したか
	Question  *Question `json:"question,omitempty"` // 次に回答すべき質問
}

// SessionRequest セッションIDのみを持つリクエスト（リセット・見積もり生成）
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// EquipmentSpec フォークリフトの機種仕様
type EquipmentSpec struct {
	Model        string  `json:"model"`          // 機種ID
	CapacityKg   int     `json:"capacity_kg"`    // 積載能力（kg）
	CapacityTons float64 `json:"capacity_tons"`  // 積載能力（トン）
	LoadCenterMm int     `json:"load_center_mm"` // ロードセンター（mm）
	FuelType     string  `json:"fuel_type"`      // 燃料タイプ
	Series       string  `json:"series"`         // シリーズ名
}

// RateEntry レートスケジュールの1行
type RateEntry struct {
	Description string  `json:"equipment_description"`    // 機材の説明文
	Daily       float64 `json:"daily_rate_0_7_days"`      // 0-7日の日額（GST込み）
	WeeklyShort float64 `json:"weekly_rate_8_28_days"`    // 8-28日の週額（GST込み）
	WeeklyLong  float64 `json:"weekly_rate_28_plus_days"` // 28日超の週額（GST込み）
}

// RateInfo 機種・期間に対して解決されたレート情報
type RateInfo struct {
	Daily       float64 `json:"daily"`        // 0-7日の日額
	WeeklyShort float64 `json:"weekly_short"` // 8-28日の週額
	WeeklyLong  float64 `json:"weekly_long"`  // 28日超の週額
	AppliedRate float64 `json:"applied_rate"` // 期間に応じて適用される実効日額
	TotalCost   float64 `json:"total_cost"`   // 実効日額 × レンタル日数
}

// RentalDetails マッチ結果に含まれるレンタル詳細
type RentalDetails struct {
	Days  int      `json:"days"`
	Rates RateInfo `json:"rates"`
}

// MatchResult 要件マッチングの結果
type MatchResult struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message,omitempty"` // 失敗時の説明メッセージ
	Forklift        *EquipmentSpec `json:"forklift,omitempty"`
	RentalDetails   *RentalDetails `json:"rental_details,omitempty"`
	BrochureExcerpt string         `json:"brochure_excerpt,omitempty"`
	Recommendations string         `json:"recommendations,omitempty"`
	SafetyInfo      string         `json:"safety_info,omitempty"`
}
