package clndir

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/harunnryd/clndir/pkg/configutil"
	"github.com/harunnryd/clndir/pkg/errorsx"
)

// EnvDir is the environment variable consulted when --dir is not given.
const EnvDir = "Downloads"

// Config carries the settings for one cleaning run.
type Config struct {
	Dir      string   `mapstructure:"dir"`
	Age      uint64   `mapstructure:"age"`
	NoWarn   bool     `mapstructure:"nowarn"`
	Skip     []string `mapstructure:"skip"`
	LogLevel string   `mapstructure:"log_level"`
}

// LoadConfig resolves settings from the parsed flag set and the
// environment. A flag given on the command line wins over the
// environment variable; the environment wins over flag defaults.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindEnv("dir", EnvDir); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := configutil.Decode(v.AllSettings(), &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	// viper and GetStringArray both rebuild string-array values from
	// their rendered form, which loses an explicit empty pattern.
	// GetSlice hands back the parsed values untouched.
	if flags.Changed("skip") {
		if sv, ok := flags.Lookup("skip").Value.(pflag.SliceValue); ok {
			cfg.Skip = sv.GetSlice()
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that a target directory was resolved.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errorsx.New(errorsx.ReasonConfigMissing,
			fmt.Sprintf("Environment variable %s not found", EnvDir))
	}
	return nil
}
