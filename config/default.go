package config

// Default returns the default engine configuration.
func Default() *Engine {
	return defaultEngine()
}

func defaultEngine() *Engine {
	return &Engine{
		LogLevel:      "info",
		StrictInputs:  true,
		LintWarnings:  true,
		DefaultWeight: 1.0,
	}
}
