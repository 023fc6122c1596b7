package report

import (
	"strings"
	"testing"

	"cryptoreporter/internal/coingecko"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{"millions get separators", 1234567.5, "$1,234,567.50"},
		{"zero", 0, "$0.00"},
		{"thousands", 43521.12, "$43,521.12"},
		{"sub-dollar", 0.5, "$0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price); got != tt.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"positive is green", floatPtr(2.53), `<span style="color: green">2.5%</span>`},
		{"negative is red", floatPtr(-1.24), `<span style="color: red">-1.2%</span>`},
		{"zero is red", floatPtr(0), `<span style="color: red">0.0%</span>`},
		{"nil is plain N/A", nil, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercentage(tt.value); got != tt.want {
				t.Errorf("FormatPercentage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_PreservesWatchListOrder(t *testing.T) {
	// Records arrive in market-cap order; the report must follow the
	// watch list order instead.
	records := []coingecko.MarketRecord{
		{ID: "bitcoin", CurrentPrice: 43000},
		{ID: "solana", CurrentPrice: 98.7},
		{ID: "ethereum", CurrentPrice: 2280},
	}
	watchList := []string{"solana", "ethereum", "bitcoin"}

	body := Render(watchList, records)

	sol := strings.Index(body, "SOLANA")
	eth := strings.Index(body, "ETHEREUM")
	btc := strings.Index(body, "BITCOIN")

	if sol == -1 || eth == -1 || btc == -1 {
		t.Fatalf("missing coin entries in body:\n%s", body)
	}
	if !(sol < eth && eth < btc) {
		t.Errorf("coin order = solana@%d ethereum@%d bitcoin@%d, want watch list order", sol, eth, btc)
	}
}

func TestRender_MissingCoinGetsErrorLine(t *testing.T) {
	records := []coingecko.MarketRecord{
		{ID: "bitcoin", CurrentPrice: 43000},
	}
	watchList := []string{"bitcoin", "notacoin", "alsonotacoin"}

	body := Render(watchList, records)

	if !strings.Contains(body, "Error accessing data for notacoin: not found") {
		t.Errorf("body missing error line for notacoin:\n%s", body)
	}
	if !strings.Contains(body, "Error accessing data for alsonotacoin: not found") {
		t.Errorf("body missing error line for alsonotacoin:\n%s", body)
	}
	// The present coin still renders after the gaps
	if !strings.Contains(body, "BITCOIN") {
		t.Errorf("body missing bitcoin entry:\n%s", body)
	}
}

func TestRender_ItemCountMatchesWatchList(t *testing.T) {
	records := []coingecko.MarketRecord{
		{ID: "bitcoin", CurrentPrice: 43000},
		// An extra record not on the watch list must not render
		{ID: "dogecoin", CurrentPrice: 0.08},
	}
	watchList := []string{"bitcoin", "ethereum", "bitcoin"}

	body := Render(watchList, records)

	if got := strings.Count(body, "<p>"); got != len(watchList) {
		t.Errorf("item count = %d, want %d", got, len(watchList))
	}
	if strings.Contains(body, "DOGECOIN") {
		t.Errorf("body contains record not on watch list:\n%s", body)
	}
	// Duplicate watch list entries render twice
	if got := strings.Count(body, "BITCOIN"); got != 2 {
		t.Errorf("bitcoin rendered %d times, want 2", got)
	}
}

func TestRender_EmptyRecordsStillRenders(t *testing.T) {
	body := Render([]string{"bitcoin", "ethereum"}, nil)

	if !strings.HasPrefix(body, "<html><body>") || !strings.HasSuffix(body, "</body></html>") {
		t.Errorf("body not wrapped in html/body tags:\n%s", body)
	}
	if got := strings.Count(body, "not found"); got != 2 {
		t.Errorf("error line count = %d, want 2", got)
	}
}

func TestRender_AbsentChangeFieldsShowNA(t *testing.T) {
	records := []coingecko.MarketRecord{
		{ID: "obscurecoin", CurrentPrice: 0.01, Change24h: floatPtr(1.0)},
	}

	body := Render([]string{"obscurecoin"}, records)

	if got := strings.Count(body, "N/A"); got != 2 {
		t.Errorf("N/A count = %d, want 2 (7d and 30d absent):\n%s", got, body)
	}
}
