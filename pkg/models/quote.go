package models

// QuoteForklift 見積もりに記載する機種情報
type QuoteForklift struct {
	Model    string `json:"model"`
	Capacity string `json:"capacity"` // 表示用（例: "4 tons"）
	FuelType string `json:"fuel_type"`
	Series   string `json:"series"`
}

// QuotePeriod 見積もりのレンタル期間
type QuotePeriod struct {
	Days      int    `json:"days"`
	StartDate string `json:"start_date"` // 表示形式（例: "02 January 2026"）
	EndDate   string `json:"end_date"`
}

// QuotePricing 見積もりの価格情報
type QuotePricing struct {
	DailyRate       float64 `json:"daily_rate"`
	TotalRentalCost float64 `json:"total_rental_cost"`
	GSTIncluded     bool    `json:"gst_included"`
	DepositRequired float64 `json:"deposit_required"` // 総額の20%
}

// Quote 構造化された見積もりレコード
type Quote struct {
	QuoteNumber     string        `json:"quote_number"` // QT-YYYYMMDD-<機種ID>
	DateIssued      string        `json:"date_issued"`
	Forklift        QuoteForklift `json:"forklift"`
	RentalPeriod    QuotePeriod   `json:"rental_period"`
	Pricing         QuotePricing  `json:"pricing"`
	TermsConditions string        `json:"terms_conditions"`
	Recommendations string        `json:"recommendations"`
	SafetyInfo      string        `json:"safety_info"`
}

// QuoteResult 見積もり生成の結果
type QuoteResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	Quote           *Quote `json:"quote,omitempty"`
	BrochureExcerpt string `json:"brochure_excerpt,omitempty"`
}

// QuoteItem 表示用のラベルと値のペア
type QuoteItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuoteSection 表示用のセクション（テーブル形式）
type QuoteSection struct {
	Title string      `json:"title"`
	Items []QuoteItem `json:"items"`
}

// QuoteTextSection 表示用のセクション（自由テキスト形式）
type QuoteTextSection struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FormattedQuote レンダリング専用の整形済み見積もり。
// ビジネスロジックは含まず、表示用の形に再構成しただけのものです。
type FormattedQuote struct {
	Title           string           `json:"title"`
	Date            string           `json:"date"`
	ModelInfo       QuoteSection     `json:"model_info"`
	RentalInfo      QuoteSection     `json:"rental_info"`
	PricingInfo     QuoteSection     `json:"pricing_info"`
	Recommendations QuoteTextSection `json:"recommendations"`
	SafetyInfo      QuoteTextSection `json:"safety_info"`
	Terms           QuoteTextSection `json:"terms"`
	Brochure        QuoteTextSection `json:"brochure"`
}

// FormattedQuoteResult 表示用整形の結果
type FormattedQuoteResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	FormattedQuote *FormattedQuote `json:"formatted_quote,omitempty"`
}
