package main

import (
	"context"
	"github.com/germanoeich/tweet-date/lib/cli"
	"github.com/germanoeich/tweet-date/lib/config"
	"github.com/germanoeich/tweet-date/lib/logging"
	_ "github.com/joho/godotenv/autoload"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.Parse()
	logger := logging.GetLogger("main")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRoot(cfg, cli.Deps{Logger: logger})
	if err := root.ExecuteContext(ctx); err != nil {
		logger.WithError(err).Debug("Exiting with error")
		cancel()
		os.Exit(1)
	}
}
