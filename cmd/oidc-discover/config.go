package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "OIDC_DISCOVER"

// configuration is the merged result of flags, OIDC_DISCOVER_* environment
// variables and the optional config file, in that order of precedence.
type configuration struct {
	Defaults   bool          `mapstructure:"defaults"`
	OriginOnly bool          `mapstructure:"origin-only"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Debug      bool          `mapstructure:"debug"`
}

func (c *configuration) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults", false)
	v.SetDefault("origin-only", false)
	v.SetDefault("timeout", "10s")
	v.SetDefault("debug", false)
}

// loadConfig builds the configuration for one invocation. configFile may be
// empty, in which case oidc-discover.yaml in the working directory is used
// when present.
func loadConfig(logger *zap.Logger, flags *pflag.FlagSet, configFile string) (*configuration, error) {
	v := viper.New()
	setDefaults(v)

	for _, name := range []string{"defaults", "origin-only", "timeout", "debug"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	//precedence: environment overwrites yml
	v.AutomaticEnv()

	if configFile != "" {
		logger.Debug("Using supplied config file", zap.String("file", configFile))
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		path, err := os.Getwd()
		if err != nil {
			logger.Warn("Unable to get current working dir", zap.Error(err))
		} else {
			v.AddConfigPath(path)
		}
		v.SetConfigName("oidc-discover")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			logger.Debug("No config file loaded")
		} else {
			logger.Debug("Config file loaded", zap.String("file", v.ConfigFileUsed()))
		}
	}

	conf := &configuration{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Config loaded", zap.Any("config", conf))
	return conf, nil
}
