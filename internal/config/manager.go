package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ConfigManager holds the current configuration and, when hot-reload is on,
// reloads it whenever the file changes on disk.
type ConfigManager struct {
	mu           sync.RWMutex
	config       *GlobalConfig
	configPath   string
	logger       zerolog.Logger
	watcher      *fsnotify.Watcher
	stopChan     chan struct{}
	stopOnce     sync.Once
	lastModified time.Time
	listeners    []func(*GlobalConfig)

	validationEnabled bool
	hotReloadEnabled  bool
	reloadDelay       time.Duration
}

// ConfigManagerOptions holds options for creating a ConfigManager
type ConfigManagerOptions struct {
	Logger            zerolog.Logger
	ValidationEnabled bool
	HotReloadEnabled  bool
	ReloadDelay       time.Duration
}

// DefaultConfigManagerOptions returns default options for ConfigManager
func DefaultConfigManagerOptions() ConfigManagerOptions {
	return ConfigManagerOptions{
		Logger:            zerolog.Nop(),
		ValidationEnabled: true,
		HotReloadEnabled:  false,
		ReloadDelay:       time.Second * 2, // 2 second delay to avoid rapid reloads
	}
}

// NewConfigManager loads the configuration at configPath (resolved with
// GetConfigPath) and sets up the file watcher if hot-reload is requested.
func NewConfigManager(configPath string, opts ConfigManagerOptions) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath:        GetConfigPath(configPath),
		logger:            opts.Logger.With().Str("module", "ConfigManager").Logger(),
		stopChan:          make(chan struct{}),
		validationEnabled: opts.ValidationEnabled,
		hotReloadEnabled:  opts.HotReloadEnabled,
		reloadDelay:       opts.ReloadDelay,
	}

	if err := cm.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load initial configuration: %w", err)
	}

	if cm.hotReloadEnabled {
		if cm.configPath == "" {
			cm.logger.Debug().Msg("No config file, hot-reload disabled")
			cm.hotReloadEnabled = false
		} else if err := cm.setupFileWatcher(); err != nil {
			cm.logger.Warn().Err(err).Msg("Failed to setup file watcher, hot-reload disabled")
			cm.hotReloadEnabled = false
		}
	}

	return cm, nil
}

// GetConfig returns a copy of the current configuration.
func (cm *ConfigManager) GetConfig() *GlobalConfig {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.config == nil {
		return NewDefaultGlobalConfig()
	}
	dst := *cm.config
	return &dst
}

// GetConfigPath returns the resolved configuration file path, or "" when
// running on defaults.
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}

// IsHotReloadEnabled returns whether hot-reload is enabled
func (cm *ConfigManager) IsHotReloadEnabled() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.hotReloadEnabled
}

// OnReload registers fn to run with the new configuration after every
// successful reload.
func (cm *ConfigManager) OnReload(fn func(*GlobalConfig)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.listeners = append(cm.listeners, fn)
}

// ReloadConfig reloads the configuration from file. On failure the previous
// configuration stays in effect.
func (cm *ConfigManager) ReloadConfig() error {
	cm.mu.Lock()
	if err := cm.loadConfig(); err != nil {
		cm.mu.Unlock()
		return err
	}
	snapshot := *cm.config
	listeners := append([]func(*GlobalConfig){}, cm.listeners...)
	cm.mu.Unlock()

	for _, fn := range listeners {
		cfg := snapshot
		fn(&cfg)
	}
	return nil
}

// StartHotReload starts the hot-reload goroutine (non-blocking)
func (cm *ConfigManager) StartHotReload(ctx context.Context) {
	if !cm.IsHotReloadEnabled() {
		return
	}
	go cm.hotReloadLoop(ctx)
}

// Close stops the hot-reload loop and the file watcher.
func (cm *ConfigManager) Close() error {
	var err error
	cm.stopOnce.Do(func() {
		close(cm.stopChan)
		if cm.watcher != nil {
			err = cm.watcher.Close()
		}
	})
	return err
}

// loadConfig loads configuration from file (assumes lock is held)
func (cm *ConfigManager) loadConfig() error {
	cfg, err := LoadGlobalConfig(cm.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cm.validationEnabled {
		if err := ValidateConfig(cfg); err != nil {
			return err
		}
	}

	if cm.configPath != "" {
		if stat, err := os.Stat(cm.configPath); err == nil {
			cm.lastModified = stat.ModTime()
		}
	}

	cm.config = cfg
	cm.logger.Debug().Str("path", cm.configPath).Msg("Configuration loaded")
	return nil
}

// setupFileWatcher watches the directory holding the config file, which
// also catches editors that replace the file instead of writing in place.
func (cm *ConfigManager) setupFileWatcher() error {
	absPath, err := filepath.Abs(cm.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path '%s': %w", cm.configPath, err)
	}
	cm.configPath = absPath

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	configDir := filepath.Dir(cm.configPath)
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch config directory '%s': %w", configDir, err)
	}

	cm.watcher = watcher
	cm.logger.Info().Str("directory", configDir).Msg("File watcher setup for hot-reload")
	return nil
}

func (cm *ConfigManager) hotReloadLoop(ctx context.Context) {
	reloadTimer := time.NewTimer(0)
	reloadTimer.Stop()
	defer reloadTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			cm.logger.Debug().Msg("Hot-reload loop stopped due to context cancellation")
			return

		case <-cm.stopChan:
			cm.logger.Debug().Msg("Hot-reload loop stopped")
			return

		case event, ok := <-cm.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) == cm.configPath && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				cm.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Config file change detected")
				reloadTimer.Reset(cm.reloadDelay)
			}

		case err, ok := <-cm.watcher.Errors:
			if !ok {
				return
			}
			cm.logger.Error().Err(err).Msg("File watcher error")

		case <-reloadTimer.C:
			if !cm.fileChanged() {
				continue
			}
			cm.logger.Info().Msg("Reloading configuration due to file change")
			if err := cm.ReloadConfig(); errors.Is(err, errorwrapper.ErrInvalidConfiguration) {
				cm.logger.Warn().Err(err).Msg("Edited configuration is invalid, keeping previous one")
			} else if err != nil {
				cm.logger.Error().Err(err).Msg("Failed to reload configuration, keeping previous one")
			} else {
				cm.logger.Info().Msg("Configuration reloaded successfully")
			}
		}
	}
}

func (cm *ConfigManager) fileChanged() bool {
	stat, err := os.Stat(cm.configPath)
	if err != nil {
		return false
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return stat.ModTime().After(cm.lastModified)
}
