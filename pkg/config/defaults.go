package config

import (
	"os"
	"strconv"
	"strings"
)

// Default values for generator configuration.
const (
	DefaultRate            = 30
	DefaultBurstFrequency  = 5  // minutes
	DefaultBurstDuration   = 10 // seconds
	DefaultBurstMultiplier = 7
	DefaultOutputFile      = "logs/generated_logs.log"
)

// Environment variable names. List-valued variables take comma-separated
// values; per-level distribution weights use EnvDistPrefix plus the level
// name (e.g. LOGSIFT_DIST_ERROR).
const (
	EnvRate            = "LOGSIFT_RATE"
	EnvLevels          = "LOGSIFT_LEVELS"
	EnvFormats         = "LOGSIFT_FORMATS"
	EnvServices        = "LOGSIFT_SERVICES"
	EnvBurstsEnabled   = "LOGSIFT_BURSTS_ENABLED"
	EnvBurstFrequency  = "LOGSIFT_BURST_FREQUENCY"
	EnvBurstDuration   = "LOGSIFT_BURST_DURATION"
	EnvBurstMultiplier = "LOGSIFT_BURST_MULTIPLIER"
	EnvOutputFile      = "LOGSIFT_OUTPUT_FILE"
	EnvConsoleOutput   = "LOGSIFT_CONSOLE_OUTPUT"
	EnvDistPrefix      = "LOGSIFT_DIST_"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Rate:   DefaultRate,
			Levels: []string{"INFO", "WARNING", "ERROR", "DEBUG"},
			Distribution: map[string]int{
				"INFO":    70,
				"WARNING": 20,
				"ERROR":   5,
				"DEBUG":   5,
			},
			Formats: []string{"txt", "json", "csv"},
			Services: []string{
				"user-service",
				"payment-service",
				"order-service",
				"inventory-service",
				"shipping-service",
				"notification-service",
				"auth-service",
				"recommendation-service",
				"search-service",
				"analytics-service",
			},
			ServiceMessages: DefaultServiceMessages(),
			Bursts: BurstConfig{
				Enabled:    true,
				Frequency:  DefaultBurstFrequency,
				Duration:   DefaultBurstDuration,
				Multiplier: DefaultBurstMultiplier,
			},
			OutputFile:    DefaultOutputFile,
			ConsoleOutput: true,
		},
	}
}

// DefaultServiceMessages returns the built-in message template table.
// The "default" family covers services without their own entry.
func DefaultServiceMessages() map[string]map[string][]string {
	return map[string]map[string][]string{
		"auth-service": {
			"INFO": {
				"User {user_id} logged in successfully",
				"User authenticated with {provider} provider",
				"Session created for user {user_id}",
			},
			"ERROR": {
				"Failed to authenticate user: {error}",
				"Invalid login attempt from {ip_address}",
				"Session creation failed for user {user_id}",
			},
		},
		"user-service": {
			"INFO": {
				"User profile updated for {user_id}",
				"New user registered: {email}",
				"User preferences saved for {user_id}",
			},
			"ERROR": {
				"Failed to update user profile: {error}",
				"User registration failed: {reason}",
				"Failed to fetch user data for {user_id}",
			},
		},
		"default": {
			"INFO": {
				"Operation completed successfully",
				"Request processed",
				"Task finished",
			},
			"WARNING": {
				"High resource usage detected",
				"Performance degradation in {component}",
				"Retrying failed operation",
			},
			"ERROR": {
				"Operation failed: {error}",
				"Failed to process request",
				"Unexpected error occurred",
			},
			"DEBUG": {
				"Processing request {request_id}",
				"Current state: {state}",
				"Received payload: {payload}",
			},
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config. Values that fail to parse are ignored.
func (c *Config) applyEnvironmentOverrides() {
	gen := &c.Generator

	if v, ok := envInt(EnvRate); ok {
		gen.Rate = v
	}
	if v, ok := envList(EnvLevels); ok {
		gen.Levels = v
	}
	if v, ok := envList(EnvFormats); ok {
		gen.Formats = v
	}
	if v, ok := envList(EnvServices); ok {
		gen.Services = v
	}
	if v, ok := envBool(EnvBurstsEnabled); ok {
		gen.Bursts.Enabled = v
	}
	if v, ok := envInt(EnvBurstFrequency); ok {
		gen.Bursts.Frequency = v
	}
	if v, ok := envInt(EnvBurstDuration); ok {
		gen.Bursts.Duration = v
	}
	if v, ok := envInt(EnvBurstMultiplier); ok {
		gen.Bursts.Multiplier = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		gen.OutputFile = v
	}
	if v, ok := envBool(EnvConsoleOutput); ok {
		gen.ConsoleOutput = v
	}

	// Rebuild the distribution over the configured levels: keep known
	// weights, default unknown levels to 0, apply per-level overrides.
	dist := make(map[string]int, len(gen.Levels))
	for _, level := range gen.Levels {
		dist[level] = gen.Distribution[level]
		if v, ok := envInt(EnvDistPrefix + level); ok {
			dist[level] = v
		}
	}
	gen.Distribution = dist
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	return strings.EqualFold(v, "true"), true
}

func envList(name string) ([]string, bool) {
	v := os.Getenv(name)
	if v == "" {
		return nil, false
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, true
}
