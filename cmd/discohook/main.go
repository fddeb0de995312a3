package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
	"github.com/aleister1102/discohook/internal/config"
	"github.com/aleister1102/discohook/internal/logger"
	"github.com/aleister1102/discohook/internal/notifier/discord"
	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	failure := color.New(color.FgRed, color.Bold)
	success := color.New(color.FgGreen)

	flags, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		failure.Fprintf(stderr, "[!] %v\n", err)
		return 1
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		failure.Fprintf(stderr, "[!] Could not load config: %v\n", err)
		return 1
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		failure.Fprintf(stderr, "[!] %v\n", err)
		return 1
	}

	zLogger, err := logger.NewLoggerBuilder().WithConfig(gCfg.LogConfig).WithConsoleOutput(stderr).Build()
	if err != nil {
		failure.Fprintf(stderr, "[!] Could not initialize logger: %v\n", err)
		return 1
	}
	log := zLogger.GetZerolog().With().Str("module", "CLI").Logger()

	webhookURL := firstNonEmpty(flags.WebhookURL, gCfg.WebhookURL)
	if webhookURL == "" && !flags.DryRun {
		failure.Fprintln(stderr, "[!] No webhook URL: pass -url or set webhook_url in the config file")
		return 1
	}

	msg, err := buildMessage(flags, webhookURL, time.Now())
	if err != nil {
		failure.Fprintf(stderr, "[!] Could not build message: %v\n", err)
		return 1
	}

	if flags.Validate {
		if err := msg.Validate(); err != nil {
			log.Error().Err(err).Msg("Message exceeds Discord limits")
			failure.Fprintf(stderr, "[!] %v\n", err)
			return 1
		}
		log.Debug().Msg("Message is within Discord limits")
	}

	if flags.DryRun {
		body, err := msg.JSON()
		if err != nil {
			failure.Fprintf(stderr, "[!] %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(body))
		return 0
	}

	client, err := gCfg.ClientConfig.NewHTTPClient(log)
	if err != nil {
		failure.Fprintf(stderr, "[!] Could not create HTTP client: %v\n", err)
		return 1
	}
	n, err := discord.NewNotifier(client, log)
	if err != nil {
		failure.Fprintf(stderr, "[!] %v\n", err)
		return 1
	}

	if err := msg.Send(ctx, n); err != nil {
		var httpErr *errorwrapper.HTTPError
		if errors.As(err, &httpErr) {
			failure.Fprintf(stderr, "[!] Webhook rejected the message: %d %s\n", httpErr.StatusCode, httpErr.Status)
		} else {
			failure.Fprintf(stderr, "[!] Could not reach webhook: %v\n", err)
		}
		return 1
	}

	success.Fprintln(stdout, "[+] Message delivered")
	return 0
}
