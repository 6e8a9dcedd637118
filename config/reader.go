package config

import (
	"github.com/spf13/viper"

	"github.com/dynalabs/rategraph/log"
)

// ViperSetDefaults sets the default engine values for the viper config 'v'.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the engine config from the 'config' file found in the
// current directory or in 'configs' subdirectory.
func ReadConfig() (*Engine, error) {
	return readNamedConfig("config")
}

// ReadNamedConfig reads the engine config with the provided name.
func ReadNamedConfig(name string) (*Engine, error) {
	return readNamedConfig(name)
}

func readNamedConfig(name string) (*Engine, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	e := &Engine{}
	if err := v.Unmarshal(e); err != nil {
		log.Debugf("Unmarshaling Engine config failed. %v", err)
		return nil, err
	}
	return e, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("strict_inputs", true)
	v.SetDefault("lint_warnings", true)
	v.SetDefault("default_weight", 1.0)
}
