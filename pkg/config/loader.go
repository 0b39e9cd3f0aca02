package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config package should avoid importing any quill-wire packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.quill/"

	// name for the config file. Does not include extension.
	configFileName = "quill"
)

var r *Registry

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	Logger loggerConfiguration
	Wire   wireConfiguration
}

// Load makes an attempt to read and unmarshal any configs from env and the
// quill config file. A missing config file is not an error; the defaults
// installed at init time remain in effect.
//
// The config file can be in form of TOML, JSON, YAML, HCL or Java
// properties config files
func Load() error {
	reg := new(Registry)
	*reg = *r

	viper.SetConfigName(configFileName)

	// search paths
	viper.AddConfigPath(searchPath1)
	viper.AddConfigPath(searchPath2)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("error reading config file: %s", err)
		}
	}

	defineENV()

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := viper.Unmarshal(reg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	reg.UsedConfigFile = viper.ConfigFileUsed()

	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

// define a set of environment variables as bindings to config file settings
func defineENV() {
	if err := viper.BindEnv("logger.level", "QUILL_LOGGER_LEVEL"); err != nil {
		fmt.Printf("defineENV %v", err)
	}

	if err := viper.BindEnv("wire.maxinvitems", "QUILL_WIRE_MAXINVITEMS"); err != nil {
		fmt.Printf("defineENV %v", err)
	}
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

func init() {
	// By default Registry should be empty but not nil. In that way, consumers
	// (packages) can use their default values on unit testing
	r = new(Registry)
	r.Logger.Level = "info"
	r.Logger.Format = "text"
	r.Wire.MaxInvItems = 50000
}
