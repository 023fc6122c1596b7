package testutil

import (
	"context"

	"cryptoreporter/internal/coingecko"
)

// MockFetcher is a mock implementation of the updater's MarketsFetcher
// interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context, coinIDs []string) ([]coingecko.MarketRecord, error)
	Calls     int
}

// Fetch implements the MarketsFetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, coinIDs []string) ([]coingecko.MarketRecord, error) {
	m.Calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, coinIDs)
	}
	return nil, nil
}

// MockSender is a mock implementation of the updater's Sender interface
// for testing
type MockSender struct {
	SendFunc func(from, to, subject, htmlBody string) error
	Calls    int

	// Captured arguments from the last Send call
	LastFrom    string
	LastTo      string
	LastSubject string
	LastBody    string
}

// Send implements the Sender interface
func (m *MockSender) Send(from, to, subject, htmlBody string) error {
	m.Calls++
	m.LastFrom = from
	m.LastTo = to
	m.LastSubject = subject
	m.LastBody = htmlBody
	if m.SendFunc != nil {
		return m.SendFunc(from, to, subject, htmlBody)
	}
	return nil
}
