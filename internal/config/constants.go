package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Client Defaults
	DefaultClientUserAgent   = "discohook-webhook/1.0"
	DefaultClientTimeoutSecs = 0 // no timeout

	// Relay Defaults
	DefaultRelayListenAddress       = ":5678"
	DefaultRelayUpstreamBaseURL     = "https://discord.com/api/v10"
	DefaultRelayMaxBodyBytes        = 1 << 20
	DefaultRelayUserAgent           = "discohook-relay/1.0"
	DefaultRelayUpstreamTimeoutSecs = 30

	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "DISCOHOOK_CONFIG_PATH"
)
