package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"forklift-rental-api/pkg/models"

	"github.com/xuri/excelize/v2"
)

// 説明文からトン数を抽出するための正規表現（例: "Diesel 2.5t Forklift"）
var tonnagePattern = regexp.MustCompile(`(\d+\.?\d*)t`)

// CatalogService フォークリフトの仕様とレンタルレートを保持し、
// 容量・レート・パンフレットの照会に応答します。
type CatalogService struct {
	specs         []models.EquipmentSpec // 容量の昇順
	rates         []models.RateEntry
	brochureLight string // 3.5〜5.5トン（D35-D55シリーズ）
	brochureHeavy string // 6.0〜9.0トン（D60-D90シリーズ）
	mu            sync.RWMutex
}

// NewCatalogService は静的な機種仕様とフォールバックレートで初期化した
// CatalogServiceを生成します。
func NewCatalogService() *CatalogService {
	return &CatalogService{
		specs:         defaultSpecs(),
		rates:         fallbackRates(),
		brochureLight: brochureD35D55,
		brochureHeavy: brochureD60D90,
	}
}

// defaultSpecs は静的な機種仕様を返します（容量の昇順）。
func defaultSpecs() []models.EquipmentSpec {
	return []models.EquipmentSpec{
		{Model: "D35s-5", CapacityKg: 3500, CapacityTons: 3.5, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D40s-5", CapacityKg: 4000, CapacityTons: 4.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D45s-5", CapacityKg: 4500, CapacityTons: 4.5, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D50C-5", CapacityKg: 5000, CapacityTons: 5.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D55C-5", CapacityKg: 5500, CapacityTons: 5.5, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D60s-5", CapacityKg: 6000, CapacityTons: 6.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D70s-5", CapacityKg: 7000, CapacityTons: 7.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D80s-5", CapacityKg: 8000, CapacityTons: 8.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
		{Model: "D90s-5", CapacityKg: 9000, CapacityTons: 9.0, LoadCenterMm: 600, FuelType: "Diesel", Series: "5-Series"},
	}
}

// fallbackRates はレートファイルが読み込めない場合のハードコードされた
// レートスケジュールを返します。
func fallbackRates() []models.RateEntry {
	return []models.RateEntry{
		{Description: "Diesel 2.5t Forklift", Daily: 44.00, WeeklyShort: 245.00, WeeklyLong: 140.00},
		{Description: "Diesel 3t Forklift", Daily: 55.00, WeeklyShort: 336.00, WeeklyLong: 210.00},
		{Description: "Diesel 4t Forklift", Daily: 30.00, WeeklyShort: 140.00, WeeklyLong: 105.00},
		{Description: "Diesel 5t Forklift", Daily: 35.00, WeeklyShort: 175.00, WeeklyLong: 126.00},
		{Description: "Diesel 7t Forklift", Daily: 35.00, WeeklyShort: 175.00, WeeklyLong: 126.00},
	}
}

// LoadRatesFromFile はCSVまたはExcelのレートファイルを読み込みます。
// 読み込みに失敗した場合はフォールバックレートを維持し、エラーを返します
// （起動は継続できます）。
func (s *CatalogService) LoadRatesFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("レートファイルを開けませんでした: %w", err)
	}
	defer f.Close()

	count, err := s.ReplaceRates(f, filepath.Base(path))
	if err != nil {
		return err
	}

	log.Printf("📊 レートスケジュールを読み込みました: %s (%d件)", path, count)
	return nil
}

// ReplaceRates はリーダーからレートスケジュールを解析し、現在のスケジュールを
// 置き換えます。1件も解析できない場合は既存のスケジュールを維持します。
func (s *CatalogService) ReplaceRates(r io.Reader, fileName string) (int, error) {
	var rows [][]string
	var err error

	if strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		f, openErr := excelize.OpenReader(r)
		if openErr != nil {
			return 0, fmt.Errorf("Excelファイルの読み込みに失敗しました: %w", openErr)
		}
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			return 0, fmt.Errorf("Excelシートの行取得に失敗しました: %w", err)
		}
	} else {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		rows, err = reader.ReadAll()
		if err != nil {
			return 0, fmt.Errorf("CSVファイルの解析に失敗しました: %w", err)
		}
	}

	parsed, err := parseRateRows(rows)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.rates = parsed
	s.mu.Unlock()

	return len(parsed), nil
}

// parseRateRows はテーブル行をレートエントリに変換します。
// スキーマ: 説明文の列 + 3つのレート列（日額 / 8-28日週額 / 28日超週額）。
// 通貨記号と桁区切りは除去します。解析できない行はスキップします。
func parseRateRows(rows [][]string) ([]models.RateEntry, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("レートファイルにはヘッダー行と少なくとも1行のデータが必要です")
	}

	entries := make([]models.RateEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			continue
		}

		desc := strings.TrimSpace(row[0])
		if desc == "" {
			continue
		}

		daily, err1 := parseCurrency(row[1])
		weeklyShort, err2 := parseCurrency(row[2])
		weeklyLong, err3 := parseCurrency(row[3])
		if err1 != nil || err2 != nil || err3 != nil {
			log.Printf("⚠️ レート行をスキップしました: %v", row)
			continue
		}

		entries = append(entries, models.RateEntry{
			Description: desc,
			Daily:       daily,
			WeeklyShort: weeklyShort,
			WeeklyLong:  weeklyLong,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("有効なレート行がありませんでした")
	}
	return entries, nil
}

// parseCurrency は通貨形式の文字列（例: "$1,234.50"）を数値に変換します。
func parseCurrency(value string) (float64, error) {
	cleaned := strings.ReplaceAll(value, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	return strconv.ParseFloat(cleaned, 64)
}

// GetForkliftByCapacity は要求容量（トン、安全マージン適用済み）を満たす
// 最小の機種を返します。該当がなければnilを返します。
func (s *CatalogService) GetForkliftByCapacity(capacityTons float64) *models.EquipmentSpec {
	// specsは容量の昇順なので、最初に条件を満たした機種が最も効率的な選択
	for i := range s.specs {
		if s.specs[i].CapacityTons >= capacityTons {
			spec := s.specs[i]
			return &spec
		}
	}
	return nil
}

// GetForkliftByModel は機種IDで仕様を検索します。
func (s *CatalogService) GetForkliftByModel(model string) *models.EquipmentSpec {
	for i := range s.specs {
		if s.specs[i].Model == model {
			spec := s.specs[i]
			return &spec
		}
	}
	return nil
}

// GetRateForModel は機種とレンタル日数からレート情報を解決します。
// レートスケジュールの説明文からトン数を抽出し、機種の容量に最も近い
// エントリを採用します（同値の場合は先に現れたものが優先）。
// 該当エントリがない場合は既定のレートにフォールバックします。
func (s *CatalogService) GetRateForModel(model string, rentalDays int) models.RateInfo {
	capacityTons := 0.0
	if spec := s.GetForkliftByModel(model); spec != nil {
		capacityTons = spec.CapacityTons
	}

	s.mu.RLock()
	var closest *models.RateEntry
	var closestTonnage float64
	for i := range s.rates {
		desc := strings.ToLower(s.rates[i].Description)
		if !strings.Contains(desc, "diesel") || !strings.Contains(desc, "forklift") {
			continue
		}
		m := tonnagePattern.FindStringSubmatch(s.rates[i].Description)
		if m == nil {
			continue
		}
		tonnage, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if closest == nil || abs(tonnage-capacityTons) < abs(closestTonnage-capacityTons) {
			closest = &s.rates[i]
			closestTonnage = tonnage
		}
	}

	entry := models.RateEntry{
		// 該当エントリがない場合の既定レート
		Description: "Default",
		Daily:       50.0,
		WeeklyShort: 280.0,
		WeeklyLong:  200.0,
	}
	if closest != nil {
		entry = *closest
	}
	s.mu.RUnlock()

	// 期間に応じたレート階層を適用（週額は実効日額に換算）
	var applied float64
	switch {
	case rentalDays <= 7:
		applied = entry.Daily
	case rentalDays <= 28:
		applied = entry.WeeklyShort / 7
	default:
		applied = entry.WeeklyLong / 7
	}

	return models.RateInfo{
		Daily:       entry.Daily,
		WeeklyShort: entry.WeeklyShort,
		WeeklyLong:  entry.WeeklyLong,
		AppliedRate: applied,
		TotalCost:   applied * float64(rentalDays),
	}
}

// GetBrochureContent は機種の容量レンジに応じたパンフレット本文を返します。
// 容量による数値レンジ分類（3.5〜5.5t / 6.0〜9.0t）で判定します。
func (s *CatalogService) GetBrochureContent(model string) string {
	spec := s.GetForkliftByModel(model)
	if spec == nil {
		return "Brochure not available for this model."
	}

	switch {
	case spec.CapacityTons >= 3.5 && spec.CapacityTons <= 5.5:
		return s.brochureLight
	case spec.CapacityTons >= 6.0 && spec.CapacityTons <= 9.0:
		return s.brochureHeavy
	default:
		return "Brochure not available for this model."
	}
}

// ListForklifts は全機種の仕様を返します。
func (s *CatalogService) ListForklifts() []models.EquipmentSpec {
	specs := make([]models.EquipmentSpec, len(s.specs))
	copy(specs, s.specs)
	return specs
}

// ListRates は現在のレートスケジュールを返します。
func (s *CatalogService) ListRates() []models.RateEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates := make([]models.RateEntry, len(s.rates))
	copy(rates, s.rates)
	return rates
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
