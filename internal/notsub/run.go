package notsub

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"aurora-grand/internal/notsub/subscriber"
	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/xpkg/config"
	"aurora-grand/internal/xpkg/logger"
)

// Execute starts the notification subscriber service.
func Execute(ctx context.Context, mylog logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("notification-subscriber", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config.yaml", "path for config yaml")

	if err := fs.Parse(args); err != nil {
		return core.ErrParseCmd
	}
	if *showHelp {
		fs.Usage()
		return core.ErrHelp
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		cfg = config.LoadDotEnv()
	}

	sub := subscriber.New(cfg, mylog)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- sub.Run(newCtx)
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return sub.Stop(context.Background())
	case err := <-runErrCh:
		if err != nil {
			mylog.Action("subscriber_failed").Error("Subscriber failed unexpectedly", err)
			return err
		}
		return nil
	}
}
