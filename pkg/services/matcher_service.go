package services

import (
	"fmt"
	"strconv"

	"forklift-rental-api/pkg/models"
	"forklift-rental-api/pkg/units"
)

// 定格限界ぎりぎりの機種を選ばないための安全マージン（20%増し）
const safetyMargin = 1.2

// MatcherService 正規化済みの要件をカタログ照会に変換し、
// 最適な機種・レート・ガイダンスを組み立てます。
type MatcherService struct {
	catalog *CatalogService
}

// NewMatcherService は新しいMatcherServiceを生成します。
func NewMatcherService(catalog *CatalogService) *MatcherService {
	return &MatcherService{catalog: catalog}
}

// MatchForklift は要件マップから最適なフォークリフトをマッチングします。
// 要求重量に安全マージンを適用して容量照会を行い、レート・パンフレット・
// 使用環境の推奨事項を組み合わせた結果を返します。
func (m *MatcherService) MatchForklift(requirements map[string]interface{}) models.MatchResult {
	loadWeight := toTons(requirements["load_weight"])

	requiredCapacity := loadWeight * safetyMargin

	matched := m.catalog.GetForkliftByCapacity(requiredCapacity)
	if matched == nil {
		return models.MatchResult{
			Success: false,
			Message: fmt.Sprintf("No suitable forklift found for load weight of %s tons.", formatTons(loadWeight)),
		}
	}

	rentalDays := toDays(requirements["rental_period"])
	rates := m.catalog.GetRateForModel(matched.Model, rentalDays)

	environment := "both"
	if value, ok := requirements["indoor_outdoor"].(string); ok && value != "" {
		environment = value
	}

	return models.MatchResult{
		Success:  true,
		Forklift: matched,
		RentalDetails: &models.RentalDetails{
			Days:  rentalDays,
			Rates: rates,
		},
		BrochureExcerpt: m.catalog.GetBrochureContent(matched.Model),
		Recommendations: usageRecommendation(environment),
		SafetyInfo:      safetyInfo(),
	}
}

// toTons は要件の重量値をトン単位のfloatに解決します。
// 文字列の場合は数値抽出とkg換算を適用し、解決できない場合は0を返します。
func toTons(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if tons, ok := units.NormalizeWeight(v); ok {
			return tons
		}
		return 0
	default:
		return 0
	}
}

// toDays は要件の期間値を日数に解決します。既定は1日です。
func toDays(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if days, ok := units.NormalizeDuration(v); ok {
			return days
		}
		return 1
	default:
		return 1
	}
}

// formatTons は重量を余分な末尾ゼロなしで表示します。
func formatTons(tons float64) string {
	return strconv.FormatFloat(tons, 'f', -1, 64)
}

// usageRecommendation は使用環境に応じた固定の推奨テキストを返します。
func usageRecommendation(environment string) string {
	switch environment {
	case "indoor":
		return "For indoor use, ensure adequate ventilation when using a diesel forklift. " +
			"Consider requesting LPG alternatives for better indoor air quality."
	case "outdoor":
		return "This diesel forklift is well-suited for outdoor use. " +
			"The pneumatic tires provide good traction on various surfaces."
	default:
		return "For mixed indoor/outdoor use, this diesel forklift will work well, but ensure " +
			"indoor areas are well-ventilated. For primarily indoor operations, " +
			"consider an LPG model for better air quality."
	}
}

// safetyInfo は安全情報テキストを返します。
// 現在のカタログでは全機種共通の内容です（機種別の情報は持っていません）。
func safetyInfo() string {
	return "This forklift comes with an Operator Sensing System (OSS), oil-cooled disc brakes, " +
		"and excellent visibility through the mast. Remember that all operators must be " +
		"certified to operate this equipment. Daily safety checks are required before operation."
}
