package services

import (
	"html/template"
	"strings"

	"forklift-rental-api/pkg/models"
)

// 見積もりHTML（印刷向けスタイル込み）のテンプレート。
// 自由テキストのセクションは改行を保持するためpre-wrapで表示します。
const quoteHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; line-height: 1.6; }
        .header { background-color: #003D73; color: white; padding: 20px; text-align: center; margin-bottom: 20px; }
        .section { margin-bottom: 20px; border-bottom: 1px solid #E0E0E0; padding-bottom: 20px; }
        .section h2 { color: #003D73; border-left: 5px solid #FF6B00; padding-left: 10px; }
        .section .text { white-space: pre-wrap; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        table, th, td { border: 1px solid #E0E0E0; }
        th { background-color: #003D73; color: white; text-align: left; padding: 10px; }
        td { padding: 10px; }
        .date { text-align: right; margin-top: 10px; }
        @media print {
            body { margin: 0; padding: 10px; }
            .no-print { display: none; }
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Bobcat Forklift Rentals</h1>
        <h2>{{.Title}}</h2>
        <div class="date">{{.Date}}</div>
    </div>
{{range .Tables}}
    <div class="section">
        <h2>{{.Title}}</h2>
        <table>
            <tr>
                <th>Item</th>
                <th>Value</th>
            </tr>
{{range .Items}}            <tr>
                <td>{{.Label}}</td>
                <td>{{.Value}}</td>
            </tr>
{{end}}        </table>
    </div>
{{end}}{{range .TextSections}}
    <div class="section">
        <h2>{{.Title}}</h2>
        <div class="text">{{.Text}}</div>
    </div>
{{end}}</body>
</html>
`

var quoteTemplate = template.Must(template.New("quote").Parse(quoteHTMLTemplate))

// quoteHTMLData テンプレートに渡す表示データ
type quoteHTMLData struct {
	Title        string
	Date         string
	Tables       []models.QuoteSection
	TextSections []models.QuoteTextSection
}

// RenderQuoteHTML は整形済み見積もりから印刷可能なHTMLドキュメントを
// 生成します。
func RenderQuoteHTML(formatted *models.FormattedQuote) (string, error) {
	data := quoteHTMLData{
		Title: formatted.Title,
		Date:  formatted.Date,
		Tables: []models.QuoteSection{
			formatted.ModelInfo,
			formatted.RentalInfo,
			formatted.PricingInfo,
		},
		TextSections: []models.QuoteTextSection{
			formatted.Recommendations,
			formatted.SafetyInfo,
			formatted.Terms,
			formatted.Brochure,
		},
	}

	var builder strings.Builder
	if err := quoteTemplate.Execute(&builder, data); err != nil {
		return "", err
	}
	return builder.String(), nil
}
