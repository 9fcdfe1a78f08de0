// Package config provides configuration loading and validation for
// logsift.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Analysis  AnalysisConfig  `yaml:"analysis,omitempty"`
	Generator GeneratorConfig `yaml:"generator,omitempty"`
}

// AnalysisConfig controls the analysis engine.
type AnalysisConfig struct {
	// WindowSize is the contiguous ERROR run length that emits an error
	// sequence. Zero means the engine default (5).
	WindowSize int `yaml:"window_size,omitempty"`
}

// GeneratorConfig controls the synthetic log producer.
type GeneratorConfig struct {
	// Rate is how many log entries to emit per second.
	Rate int `yaml:"rate"`

	// Levels lists the severity tags the producer emits.
	Levels []string `yaml:"levels,omitempty"`

	// Distribution maps level to relative weight. Weights are relative
	// only; they need not sum to 100.
	Distribution map[string]int `yaml:"distribution,omitempty"`

	// Formats lists the wire formats the producer may choose from.
	// One format is selected per run.
	Formats []string `yaml:"formats,omitempty"`

	// Services lists the service names log entries are attributed to.
	Services []string `yaml:"services,omitempty"`

	// ServiceMessages maps service name to level to message templates.
	// The "default" key supplies templates for services without their
	// own entry. Templates may carry {placeholder} tokens.
	ServiceMessages map[string]map[string][]string `yaml:"service_messages,omitempty"`

	// Bursts controls temporary elevated emission rate.
	Bursts BurstConfig `yaml:"bursts,omitempty"`

	// OutputFile is the log file to append to. Empty disables file
	// output. When the path has no known extension, the chosen format's
	// extension is added.
	OutputFile string `yaml:"output_file,omitempty"`

	// ConsoleOutput echoes each entry to stdout.
	ConsoleOutput bool `yaml:"console_output"`
}

// BurstConfig controls burst-mode pacing.
type BurstConfig struct {
	Enabled bool `yaml:"enabled"`

	// Frequency is the target interval between bursts, in minutes.
	Frequency int `yaml:"frequency,omitempty"`

	// Duration is how long a burst lasts, in seconds.
	Duration int `yaml:"duration,omitempty"`

	// Multiplier scales the emission rate during a burst.
	Multiplier int `yaml:"multiplier,omitempty"`
}
