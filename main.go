package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"cryptoreporter/internal/coingecko"
	"cryptoreporter/internal/config"
	"cryptoreporter/internal/mailer"
	"cryptoreporter/internal/scheduler"
	"cryptoreporter/internal/updater"
	"cryptoreporter/internal/watchlist"
)

func main() {
	once := pflag.Bool("once", false, "send a single update and exit instead of running the scheduler")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Resolve the watch list once; it stays fixed for the process lifetime
	coins := watchlist.Resolve(cfg.WatchedCoinsJSON, cfg.WatchedCoinsList)
	if len(coins) == 0 {
		log.Fatal("No coins configured to watch")
	}
	fmt.Printf("Configuration validated. Watching coins: %v\n", coins)

	u := updater.New(
		coingecko.NewMarketsFetcher(cfg.CoingeckoBaseURL),
		mailer.New(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass),
		coins,
		cfg.EmailUser,
		cfg.RecipientEmail,
	)

	if *once {
		if err := u.Run(context.Background()); err != nil {
			log.Fatalf("Update failed: %v", err)
		}
		return
	}

	sched := scheduler.New(cfg.DailySendTime, time.Duration(cfg.UpdateIntervalMinutes)*time.Minute)

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := sched.Start(func() error {
		return u.Run(context.Background())
	}); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}
