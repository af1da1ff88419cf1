package storefront

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"aurora-grand/internal/storefront/api/http"
	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/xpkg/config"
	"aurora-grand/internal/xpkg/logger"
)

type params struct {
	storefrontParams *core.StorefrontParams
	configPath       string
	cfg              *config.Config
}

// Execute starts the storefront service.
func Execute(ctx context.Context, mylog logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params, err := parseParams(args)
	if err != nil {
		mylog.Action("command_parse_failed").Error("Invalid command received", err)
		return err
	}
	if err = validateParams(params); err != nil {
		mylog.Action("command_validation_failed").Error("Invalid command received", err)
		return err
	}
	mylog.Action("command_validation_completed").Info("Successfully validated params")

	server := http.NewServer(newCtx, context.Background(), params.cfg, params.storefrontParams, mylog)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- server.Run()
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return server.Stop(context.Background())
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			mylog.Action("storefront_failed").Error("Server failed unexpectedly", err)
			return err
		}
		mylog.Action("server_stopped").Info("Server exited normally")
		return nil
	}
}

// parseParams parses params from the terminal.
func parseParams(args []string) (*params, error) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config.yaml", "path for config yaml")

	port := fs.Int("port", 3000, "Port to run the storefront service")

	if err := fs.Parse(args); err != nil {
		return nil, core.ErrParseCmd
	}

	if *showHelp {
		fs.Usage()
		return nil, core.ErrHelp
	}

	return &params{
		storefrontParams: &core.StorefrontParams{
			Port: *port,
		},
		configPath: *configPath,
	}, nil
}

func validateParams(params *params) error {
	cfg, err := config.LoadConfig(params.configPath)
	if err != nil {
		// Fall back to the environment when no config file is present.
		cfg = config.LoadDotEnv()
	}
	params.cfg = cfg

	p := params.storefrontParams
	if p.Port <= 0 || p.Port >= 65536 {
		return fmt.Errorf("port must be in [0: 65,535]: %d", p.Port)
	}

	switch cfg.Catalog.Source {
	case "static", "database":
	default:
		return fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}

	return nil
}
