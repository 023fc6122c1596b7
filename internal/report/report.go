// Package report renders the HTML body of a market update email.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cryptoreporter/internal/coingecko"
)

// printer formats prices with English digit grouping ($1,234,567.50).
var printer = message.NewPrinter(language.English)

// Render builds the report body by walking the watch list in its original
// order and looking each coin up in the fetched records. Coins missing
// from the records get an inline error line; one missing coin never
// aborts the rest of the report. Rendering is pure and never fails.
func Render(watchList []string, records []coingecko.MarketRecord) string {
	byID := make(map[string]coingecko.MarketRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	var b strings.Builder
	b.WriteString("<html><body>")

	for _, coinID := range watchList {
		coin, ok := byID[coinID]
		if !ok {
			fmt.Fprintf(&b, "<p>Error accessing data for %s: not found</p>", coinID)
			continue
		}

		fmt.Fprintf(&b, `
<p><b>%s</b>:
<br>Current Price: %s
<br>24h Change: %s
<br>7d Change: %s
<br>30d Change: %s
</p>`,
			strings.ToUpper(coin.ID),
			FormatPrice(coin.CurrentPrice),
			FormatPercentage(coin.Change24h),
			FormatPercentage(coin.Change7d),
			FormatPercentage(coin.Change30d))
	}

	b.WriteString("</body></html>")
	return b.String()
}

// FormatPrice renders a USD price with thousands separators and exactly
// two decimal places.
func FormatPrice(price float64) string {
	return printer.Sprintf("$%.2f", price)
}

// FormatPercentage renders a change percentage to one decimal place,
// colored green when strictly positive and red otherwise. A zero change
// is red; the upstream report has always classed flat as down and
// consumers expect that. A nil value renders as a plain "N/A".
func FormatPercentage(value *float64) string {
	if value == nil {
		return "N/A"
	}
	color := "red"
	if *value > 0 {
		color = "green"
	}
	return fmt.Sprintf(`<span style="color: %s">%.1f%%</span>`, color, *value)
}
