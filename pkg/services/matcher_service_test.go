package services

import (
	"strings"
	"testing"
)

func newTestMatcher() *MatcherService {
	return NewMatcherService(NewCatalogService())
}

func TestMatchForklift(t *testing.T) {
	matcher := newTestMatcher()

	// 3トン × 1.2 = 3.6トン → 4トン機（D40s-5）
	result := matcher.MatchForklift(map[string]interface{}{
		"load_weight":    3.0,
		"rental_period":  7,
		"indoor_outdoor": "outdoor",
	})

	if !result.Success {
		t.Fatalf("Match should succeed: %s", result.Message)
	}
	if result.Forklift.Model != "D40s-5" {
		t.Errorf("Expected D40s-5 for 3 ton requirement, got %s", result.Forklift.Model)
	}
	if result.RentalDetails.Days != 7 {
		t.Errorf("Expected 7 rental days, got %d", result.RentalDetails.Days)
	}
	if result.BrochureExcerpt == "" {
		t.Error("Match result should include a brochure excerpt")
	}
}

func TestMatchForkliftHigherCapacity(t *testing.T) {
	matcher := newTestMatcher()

	// 6トン × 1.2 = 7.2トン → 8トン機（D80s-5）
	result := matcher.MatchForklift(map[string]interface{}{
		"load_weight":    6.0,
		"rental_period":  14,
		"indoor_outdoor": "both",
	})

	if !result.Success {
		t.Fatalf("Match should succeed: %s", result.Message)
	}
	if result.Forklift.Model != "D80s-5" {
		t.Errorf("Expected D80s-5 for 6 ton requirement, got %s", result.Forklift.Model)
	}
}

func TestMatchForkliftNoMatch(t *testing.T) {
	matcher := newTestMatcher()

	// 10トン × 1.2 = 12トン → 該当機種なし
	result := matcher.MatchForklift(map[string]interface{}{
		"load_weight":    10.0,
		"rental_period":  7,
		"indoor_outdoor": "outdoor",
	})

	if result.Success {
		t.Fatal("Match should fail for a 10 ton requirement")
	}
	if !strings.Contains(result.Message, "No suitable forklift found") {
		t.Errorf("Failure message should explain no match, got %q", result.Message)
	}
	// メッセージには要求重量が含まれる
	if !strings.Contains(result.Message, "10") {
		t.Errorf("Failure message should contain the requested weight, got %q", result.Message)
	}
}

func TestMatchForkliftStringWeight(t *testing.T) {
	matcher := newTestMatcher()

	// 文字列の重量も数値抽出とkg換算で解決される
	result := matcher.MatchForklift(map[string]interface{}{
		"load_weight":   "3000 kg",
		"rental_period": 7,
	})

	if !result.Success {
		t.Fatalf("Match should succeed for string weight: %s", result.Message)
	}
	if result.Forklift.Model != "D40s-5" {
		t.Errorf("Expected D40s-5 for '3000 kg', got %s", result.Forklift.Model)
	}
}

func TestMatchForkliftDefaults(t *testing.T) {
	matcher := newTestMatcher()

	// 要件が欠けていても既定値（重量0、1日、both）で動作する
	result := matcher.MatchForklift(map[string]interface{}{})

	if !result.Success {
		t.Fatalf("Match with empty requirements should succeed: %s", result.Message)
	}
	if result.Forklift.Model != "D35s-5" {
		t.Errorf("Zero weight should match the smallest forklift, got %s", result.Forklift.Model)
	}
	if result.RentalDetails.Days != 1 {
		t.Errorf("Expected default rental period of 1 day, got %d", result.RentalDetails.Days)
	}
	if !strings.Contains(result.Recommendations, "mixed indoor/outdoor") {
		t.Errorf("Missing environment should default to the mixed-use recommendation, got %q",
			result.Recommendations)
	}
}

func TestUsageRecommendations(t *testing.T) {
	matcher := newTestMatcher()

	base := map[string]interface{}{
		"load_weight":   3.0,
		"rental_period": 7,
	}

	// 屋内: 換気とLPGの代替を推奨
	base["indoor_outdoor"] = "indoor"
	indoor := matcher.MatchForklift(base)
	if !strings.Contains(indoor.Recommendations, "ventilation") ||
		!strings.Contains(indoor.Recommendations, "LPG") {
		t.Errorf("Indoor recommendation should mention ventilation and LPG, got %q",
			indoor.Recommendations)
	}

	// 屋外: トラクションに言及
	base["indoor_outdoor"] = "outdoor"
	outdoor := matcher.MatchForklift(base)
	if !strings.Contains(outdoor.Recommendations, "well-suited") ||
		!strings.Contains(outdoor.Recommendations, "traction") {
		t.Errorf("Outdoor recommendation should mention suitability and traction, got %q",
			outdoor.Recommendations)
	}

	// 併用: 換気とLPGに言及
	base["indoor_outdoor"] = "both"
	both := matcher.MatchForklift(base)
	if !strings.Contains(both.Recommendations, "well-ventilated") ||
		!strings.Contains(both.Recommendations, "LPG") {
		t.Errorf("Mixed-use recommendation should mention ventilation and LPG, got %q",
			both.Recommendations)
	}
}

func TestSafetyInfo(t *testing.T) {
	matcher := newTestMatcher()

	result := matcher.MatchForklift(map[string]interface{}{
		"load_weight":   4.0,
		"rental_period": 7,
	})

	if !strings.Contains(result.SafetyInfo, "Operator Sensing System") {
		t.Error("Safety info should mention the Operator Sensing System")
	}
	if !strings.Contains(result.SafetyInfo, "certified") {
		t.Error("Safety info should mention operator certification")
	}
	if !strings.Contains(result.SafetyInfo, "safety checks") {
		t.Error("Safety info should mention daily safety checks")
	}
}
