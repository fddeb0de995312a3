package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/discohook/internal/config"
	"github.com/aleister1102/discohook/internal/logger"
	"github.com/aleister1102/discohook/internal/relay"
)

func main() {
	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")
	noReload := flag.Bool("no-reload", false, "Do not watch the configuration file for changes.")
	flag.Parse()

	if *globalConfigFile == "" && *globalConfigFileAlias != "" {
		*globalConfigFile = *globalConfigFileAlias
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bootstrap load so the logger exists before the manager starts logging.
	gCfg, err := config.LoadGlobalConfig(*globalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", *globalConfigFile, err)
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Main: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	opts := config.DefaultConfigManagerOptions()
	opts.Logger = zLogger
	opts.HotReloadEnabled = !*noReload
	manager, err := config.NewConfigManager(*globalConfigFile, opts)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize configuration manager")
	}
	defer manager.Close()

	server, err := relay.New(manager.GetConfig().RelayConfig, nil, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize relay")
	}

	manager.OnReload(func(cfg *config.GlobalConfig) {
		server.UpdateConfig(cfg.RelayConfig)
	})
	manager.StartHotReload(ctx)

	if err := server.Start(ctx); err != nil {
		zLogger.Error().Err(err).Msg("Relay stopped with error")
		os.Exit(1)
	}
	zLogger.Info().Msg("Relay stopped")
}
