package units

import (
	"regexp"
	"strconv"
	"strings"
)

// 数値抽出用の正規表現（最初に現れる数値を採用）
var (
	numberPattern   = regexp.MustCompile(`(\d+\.?\d*)`)
	integerPattern  = regexp.MustCompile(`(\d+)`)
	bareIntPattern  = regexp.MustCompile(`^\d+$`)
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(day|week|month)`)
)

// ExtractNumber はテキストから最初の小数値を抽出します。
// 数値が含まれない場合は false を返します。
func ExtractNumber(text string) (float64, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractInt はテキストから最初の整数値を抽出します。
func ExtractInt(text string) (int, bool) {
	match := integerPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return value, true
}

// NormalizeWeight は重量入力をトン単位に正規化します。
// kg表記は1000で割り、単位なしはトンとして扱います。
func NormalizeWeight(text string) (float64, bool) {
	value, ok := ExtractNumber(text)
	if !ok {
		return 0, false
	}
	if strings.Contains(strings.ToLower(text), "kg") {
		value = value / 1000
	}
	return value, true
}

// NormalizeDuration はレンタル期間入力を日数に正規化します。
// week表記は7倍、month表記は30倍します。
func NormalizeDuration(text string) (int, bool) {
	days, ok := ExtractInt(text)
	if !ok {
		return 0, false
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "week") {
		days *= 7
	} else if strings.Contains(lower, "month") {
		days *= 30
	}
	return days, true
}

// NormalizeHeight は高さ入力をメートル単位に正規化します。
// フィート表記は0.3048を掛けます。
func NormalizeHeight(text string) (float64, bool) {
	value, ok := ExtractNumber(text)
	if !ok {
		return 0, false
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "ft") || strings.Contains(lower, "feet") {
		value = value * 0.3048
	}
	return value, true
}

// ValidateWeight は重量入力を検証します。
// 数値が含まれていれば有効（単位は任意）。
func ValidateWeight(text string) bool {
	return numberPattern.MatchString(text)
}

// ValidateDuration はレンタル期間入力を検証します。
// 正の整数、または数値＋単位（day/week/month）のみ有効。
// ゼロと負数は拒否します。
func ValidateDuration(text string) bool {
	if bareIntPattern.MatchString(text) {
		value, err := strconv.Atoi(text)
		return err == nil && value > 0
	}
	if m := durationPattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.Atoi(m[1])
		return err == nil && value > 0
	}
	return false
}

// ValidateHeight は高さ入力を検証します。
// 数値が含まれていれば有効（単位は任意）。
func ValidateHeight(text string) bool {
	return numberPattern.MatchString(text)
}
