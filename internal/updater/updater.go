// Package updater runs one fetch, render and dispatch cycle.
package updater

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cryptoreporter/internal/coingecko"
	"cryptoreporter/internal/report"
)

// Subject is the fixed subject line of every update email.
const Subject = "Crypto Currency Update"

// MarketsFetcher fetches market records for a set of coin ids.
type MarketsFetcher interface {
	Fetch(ctx context.Context, coinIDs []string) ([]coingecko.MarketRecord, error)
}

// Sender delivers one rendered report.
type Sender interface {
	Send(from, to, subject, htmlBody string) error
}

// Updater wires the pipeline together: fetch market data for the watch
// list, render the report, send it.
type Updater struct {
	fetcher   MarketsFetcher
	sender    Sender
	watchList []string
	from      string
	to        string
}

// New creates an Updater. The watch list is resolved once at startup and
// stays fixed for the process lifetime.
func New(fetcher MarketsFetcher, sender Sender, watchList []string, from, to string) *Updater {
	return &Updater{
		fetcher:   fetcher,
		sender:    sender,
		watchList: watchList,
		from:      from,
		to:        to,
	}
}

// Run executes one full update cycle. A fetch failure aborts the cycle
// before any send is attempted. Every failure is returned to the caller;
// the scheduler logs it and keeps going, so one bad run never takes the
// process down.
func (u *Updater) Run(ctx context.Context) error {
	slog.Info("sending crypto update", "time", time.Now().Format("2006-01-02 15:04:05"), "coins", u.watchList)

	records, err := u.fetcher.Fetch(ctx, u.watchList)
	if err != nil {
		slog.Error("run failed", "stage", "fetch", "error", err)
		return fmt.Errorf("fetching market data: %w", err)
	}

	body := report.Render(u.watchList, records)

	if err := u.sender.Send(u.from, u.to, Subject, body); err != nil {
		slog.Error("run failed", "stage", "dispatch", "error", err)
		return fmt.Errorf("sending update email: %w", err)
	}

	slog.Info("email sent successfully", "to", u.to)
	return nil
}
