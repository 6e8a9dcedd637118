package config

// Engine defines the configuration for the template resolution and graph
// assembly engine.
type Engine struct {
	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// TemplatePaths are the directories scanned for template documents on
	// engine start. Every '*.yaml' and '*.yml' file found there is loaded
	// into the registry.
	TemplatePaths []string `mapstructure:"template_paths"`

	// StrictInputs defines whether an input variable referenced by the
	// operator equations must receive at least one inbound connection or an
	// explicit value during circuit assembly.
	StrictInputs bool `mapstructure:"strict_inputs"`

	// LintWarnings enables warnings for suspicious template documents, i.e.
	// duplicate keys or case-only synonym variable entries.
	LintWarnings bool `mapstructure:"lint_warnings"`

	// DefaultWeight is the connection weight used when an edge entry
	// doesn't carry one.
	DefaultWeight float64 `mapstructure:"default_weight"`
}
