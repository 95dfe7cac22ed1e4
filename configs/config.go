// Package configs loads the evaluator constants from a file and the environment.
package configs

import (
	"fmt"
	"strings"

	"github.com/alexshd/gammaprime"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GAMMAPRIME_CEILING.
const EnvPrefix = "GAMMAPRIME"

// Root mirrors the configuration file layout.
type Root struct {
	Ceiling     float64
	Scaler      float64
	Offset      int
	Base        float64
	FractalBase float64
	WarnAbove   int
}

// Config converts the file layout into evaluator constants.
func (r Root) Config() gammaprime.Config {
	return gammaprime.Config{
		Ceiling:     r.Ceiling,
		Scaler:      r.Scaler,
		Offset:      r.Offset,
		Base:        r.Base,
		FractalBase: r.FractalBase,
		WarnAbove:   r.WarnAbove,
	}
}

// New returns a viper instance seeded with gammaprime.DefaultConfig and
// bound to the GAMMAPRIME_ environment.
func New() *viper.Viper {
	v := viper.New()

	def := gammaprime.DefaultConfig()
	v.SetDefault("ceiling", def.Ceiling)
	v.SetDefault("scaler", def.Scaler)
	v.SetDefault("offset", def.Offset)
	v.SetDefault("base", def.Base)
	v.SetDefault("fractalbase", def.FractalBase)
	v.SetDefault("warnabove", def.WarnAbove)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional file at path (empty means defaults and
// environment only) and returns validated constants.
func Load(path string) (gammaprime.Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return gammaprime.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var r Root
	if err := v.Unmarshal(&r); err != nil {
		return gammaprime.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := r.Config()
	if err := cfg.Validate(); err != nil {
		return gammaprime.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
