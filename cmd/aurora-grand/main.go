package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"aurora-grand/internal/notsub"
	"aurora-grand/internal/storefront"
	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/xpkg/logger"
)

func main() {
	mylogger, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("log error: %v", err)
	}

	mylogger.Action("aurora_grand_started").Info("Successfully started")

	// Global flags for selecting the service mode
	fs := flag.NewFlagSet("main", flag.ExitOnError)
	mode := fs.String("mode", "", "service to run: storefront | notification-subscriber")

	// Only parse the first few args for `--mode`, the rest go to the service
	args := os.Args[1:]
	modeArgs := []string{}
	for i, arg := range args {
		if strings.HasPrefix(arg, "--mode") || strings.HasPrefix(arg, "-mode") {
			modeArgs = args[:i+1]
			break
		}
	}
	if err := fs.Parse(modeArgs); err != nil {
		mylogger.Action("aurora_grand_failed").Error("Failed to parse flags", err)
		help(fs)
		return
	}

	if *mode == "" {
		mylogger.Action("aurora_grand_failed").Error("Failed to start storefront system", core.ErrModeFlag)
		help(fs)
		return
	}

	remainingArgs := args[len(modeArgs):]

	ctx := context.Background()
	switch *mode {
	case "storefront", "sf":
		l := mylogger.With("service", "storefront")
		l.Action("storefront_started").Info("Successfully started")
		if err := storefront.Execute(ctx, l, remainingArgs); err != nil {
			l.Action("storefront_failed").Error("Error in storefront", err)
			if !errors.Is(err, core.ErrHelp) {
				log.Fatalf("failed to execute storefront: %s", err)
			}
		}
		l.Action("storefront_completed").Info("Successfully completed")

	case "notification-subscriber", "ns":
		l := mylogger.With("service", "notification-subscriber")
		l.Action("notification_subscriber_started").Info("Successfully started")
		if err := notsub.Execute(ctx, l, remainingArgs); err != nil {
			l.Action("notification_subscriber_failed").Error("Error in notification-subscriber", err)
			if !errors.Is(err, core.ErrHelp) {
				log.Fatalf("failed to execute notification-subscriber: %s", err)
			}
		}
		l.Action("notification_subscriber_completed").Info("Successfully completed")

	default:
		mylogger.Action("aurora_grand_failed").Error("Failed to start storefront system", core.ErrUnknownService)
		help(fs)
	}
}

func help(fs *flag.FlagSet) {
	fmt.Println("\nUsage:")
	fs.PrintDefaults()
	fmt.Println("\nExample:")
	fmt.Println("  ./aurora-grand --mode=storefront --port=3000")
}
