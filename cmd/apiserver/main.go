// Command apiserver runs the Pharmyrus HTTP API configured entirely from
// the environment, the layout container deployments use.  The pharmyrus CLI
// wraps the same server with config-file support.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/pharmyrus/internal/bootstrap"
	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}

	server := app.HTTPServer()
	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		app.Log.Info("signal received", logging.String("signal", sig.String()))
		return server.Shutdown(context.Background())
	}
}
