package services

import (
	"fmt"
	"time"

	"forklift-rental-api/pkg/models"
)

// 見積もり内の日付表示形式（例: "02 January 2026"）
const quoteDateLayout = "02 January 2006"

// 予約確保に必要なデポジット（総額に対する割合）
const depositRate = 0.20

// QuoteService マッチ結果から見積もりレコードと表示用の整形済み
// 見積もりを生成します。
type QuoteService struct{}

// NewQuoteService は新しいQuoteServiceを生成します。
func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// GenerateQuote はマッチ結果から見積もりを生成します。
// レンタル開始日は翌日、終了日は開始日＋（日数−1）です。
func (s *QuoteService) GenerateQuote(match models.MatchResult) models.QuoteResult {
	if !match.Success {
		message := match.Message
		if message == "" {
			message = "No suitable forklift found."
		}
		return models.QuoteResult{Success: false, Message: message}
	}

	forklift := match.Forklift
	details := match.RentalDetails

	today := time.Now()
	rentalStart := today.AddDate(0, 0, 1)
	rentalEnd := rentalStart.AddDate(0, 0, details.Days-1)

	totalCost := details.Rates.TotalCost

	quote := &models.Quote{
		QuoteNumber: fmt.Sprintf("QT-%s-%s", today.Format("20060102"), forklift.Model),
		DateIssued:  today.Format(quoteDateLayout),
		Forklift: models.QuoteForklift{
			Model:    forklift.Model,
			Capacity: fmt.Sprintf("%g tons", forklift.CapacityTons),
			FuelType: forklift.FuelType,
			Series:   forklift.Series,
		},
		RentalPeriod: models.QuotePeriod{
			Days:      details.Days,
			StartDate: rentalStart.Format(quoteDateLayout),
			EndDate:   rentalEnd.Format(quoteDateLayout),
		},
		Pricing: models.QuotePricing{
			DailyRate:       details.Rates.AppliedRate,
			TotalRentalCost: totalCost,
			GSTIncluded:     true,
			DepositRequired: totalCost * depositRate,
		},
		TermsConditions: termsAndConditions(),
		Recommendations: match.Recommendations,
		SafetyInfo:      match.SafetyInfo,
	}

	return models.QuoteResult{
		Success:         true,
		Quote:           quote,
		BrochureExcerpt: match.BrochureExcerpt,
	}
}

// FormatQuoteForDisplay は見積もりを表示用のセクション構造に整形します。
// ビジネスロジックは行わず、ラベルと値のペアへの再構成のみを行います。
func (s *QuoteService) FormatQuoteForDisplay(result models.QuoteResult) models.FormattedQuoteResult {
	if !result.Success {
		message := result.Message
		if message == "" {
			message = "Unable to generate quote."
		}
		return models.FormattedQuoteResult{Success: false, Message: message}
	}

	quote := result.Quote

	formatted := &models.FormattedQuote{
		Title: fmt.Sprintf("Forklift Rental Quote #%s", quote.QuoteNumber),
		Date:  fmt.Sprintf("Issued: %s", quote.DateIssued),
		ModelInfo: models.QuoteSection{
			Title: "Forklift Details",
			Items: []models.QuoteItem{
				{Label: "Model", Value: quote.Forklift.Model},
				{Label: "Capacity", Value: quote.Forklift.Capacity},
				{Label: "Fuel Type", Value: quote.Forklift.FuelType},
				{Label: "Series", Value: quote.Forklift.Series},
			},
		},
		RentalInfo: models.QuoteSection{
			Title: "Rental Period",
			Items: []models.QuoteItem{
				{Label: "Start Date", Value: quote.RentalPeriod.StartDate},
				{Label: "End Date", Value: quote.RentalPeriod.EndDate},
				{Label: "Duration", Value: fmt.Sprintf("%d days", quote.RentalPeriod.Days)},
			},
		},
		PricingInfo: models.QuoteSection{
			Title: "Pricing Details",
			Items: []models.QuoteItem{
				{Label: "Daily Rate", Value: fmt.Sprintf("$%.2f", quote.Pricing.DailyRate)},
				{Label: "Total Rental Cost", Value: fmt.Sprintf("$%.2f", quote.Pricing.TotalRentalCost)},
				{Label: "GST", Value: "Included in price"},
				{Label: "Deposit Required", Value: fmt.Sprintf("$%.2f", quote.Pricing.DepositRequired)},
			},
		},
		Recommendations: models.QuoteTextSection{
			Title: "Recommendations",
			Text:  quote.Recommendations,
		},
		SafetyInfo: models.QuoteTextSection{
			Title: "Safety Information",
			Text:  quote.SafetyInfo,
		},
		Terms: models.QuoteTextSection{
			Title: "Terms & Conditions",
			Text:  quote.TermsConditions,
		},
		Brochure: models.QuoteTextSection{
			Title: "Forklift Specifications",
			Text:  result.BrochureExcerpt,
		},
	}

	return models.FormattedQuoteResult{
		Success:        true,
		FormattedQuote: formatted,
	}
}

// termsAndConditions はレンタルの利用規約を返します（全見積もり共通）。
func termsAndConditions() string {
	return "1. RENTAL PERIOD: The rental period begins on the date specified and continues until the equipment " +
		"is returned or the rental period ends, whichever is later.\n\n" +
		"2. PAYMENT: A 20% deposit is required to secure the booking. The balance is due on delivery. " +
		"For rentals exceeding 30 days, monthly payments may be arranged.\n\n" +
		"3. OPERATOR REQUIREMENTS: All operators must be properly licensed and certified to operate the equipment. " +
		"Proof of certification may be required.\n\n" +
		"4. MAINTENANCE: Daily maintenance checks (oil, water, battery) are the responsibility of the renter. " +
		"Any mechanical issues must be reported immediately.\n\n" +
		"5. INSURANCE: The renter must provide insurance coverage for the equipment during the rental period. " +
		"Proof of insurance is required prior to delivery.\n\n" +
		"6. DAMAGES: The renter is responsible for any damages beyond normal wear and tear. " +
		"Equipment must be returned in the same condition as when delivered.\n\n" +
		"7. CANCELLATION: Cancellations made less than 48 hours before the rental start date " +
		"may forfeit the deposit."
}
