package class

// MjrConfig - major that classifies errors related with the engine
// configuration.
var MjrConfig Major

var (
	// MnrConfigValue is the 'MjrConfig' minor error classification on the
	// configuration value issues.
	MnrConfigValue Minor

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error
	// classification used when a configuration value fails validation.
	ConfigValueInvalid Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "engine configuration issues")

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "configuration value issues")
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "configuration value fails validation").Class()
}
