package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dev-connector/internal/adapter"
	"github.com/MKhiriev/go-dev-connector/internal/client"
	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
)

func main() {
	log := logger.NewLogger("dev-connector-client", logger.WithLevel("warn"))

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "server base URL (env FEED_SERVER_URL)")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "session token (env FEED_TOKEN)")
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout (env FEED_REQUEST_TIMEOUT)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, client.Usage)
		fmt.Fprintln(os.Stderr, "\nglobal flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(serverAdapter, os.Stdout, log).Run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if len(flag.Args()) == 0 {
			flag.Usage()
		}
		stop()
		os.Exit(1)
	}
}
