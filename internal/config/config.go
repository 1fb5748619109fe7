// ABOUTME: Settings loading with spf13/viper: defaults, YAML file, SPOMO_* env, CLI flags
// ABOUTME: Precedence is flag > env > file > default; Validate checks enumerated keys

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/spomo-go/internal/audio"
	"github.com/mauromedda/spomo-go/pkg/tui/theme"
)

// EnvPrefix prefixes every environment override, e.g. SPOMO_SOUND=bell.
const EnvPrefix = "SPOMO"

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid setting")

// Settings holds the effective configuration.
type Settings struct {
	Title   string        `mapstructure:"title" yaml:"title"`
	Sound   string        `mapstructure:"sound" yaml:"sound"`
	LogFile string        `mapstructure:"log_file" yaml:"log_file"`
	Theme   ThemeSettings `mapstructure:"theme" yaml:"theme"`
}

// ThemeSettings selects a built-in theme and overrides single colors.
type ThemeSettings struct {
	Name   string        `mapstructure:"name" yaml:"name"`
	Colors theme.Palette `mapstructure:"colors" yaml:"colors"`
}

// colorKeys are the theme.colors.* keys; viper only maps env vars for keys it knows.
var colorKeys = []string{
	"border", "title", "label", "remaining", "elapsed",
	"gauge_filled", "gauge_empty", "gauge_label", "hint",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "spomo")
	v.SetDefault("sound", audio.KindTone)
	v.SetDefault("log_file", "")
	v.SetDefault("theme.name", "default")
	for _, k := range colorKeys {
		v.SetDefault("theme.colors."+k, "")
	}
}

// Default returns the built-in settings.
func Default() *Settings {
	v := viper.New()
	setDefaults(v)
	s := &Settings{}
	// Defaults are plain strings; decoding them cannot fail.
	_ = v.Unmarshal(s)
	return s
}

// Load builds the effective settings. An empty path reads the global
// config file if it exists; an explicit path must exist. flags may be nil;
// only flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(configFileName, ".yaml"))
		v.AddConfigPath(GlobalDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"title", "sound"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	ResolveEnvVars(s)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects unknown sound kinds and theme names.
func (s *Settings) Validate() error {
	if !slices.Contains(audio.Kinds(), s.Sound) {
		return fmt.Errorf("%w: sound %q (want one of %v)", ErrInvalid, s.Sound, audio.Kinds())
	}
	if theme.Builtin(s.Theme.Name) == nil {
		return fmt.Errorf("%w: theme %q (want one of %v)", ErrInvalid, s.Theme.Name, theme.BuiltinNames())
	}
	return nil
}

// Palette returns the chosen theme's palette with color overrides applied.
func (s *Settings) Palette() theme.Palette {
	return theme.Resolve(s.Theme.Name, s.Theme.Colors)
}

// YAML renders the settings with every color resolved.
func (s *Settings) YAML() ([]byte, error) {
	out := *s
	out.Theme.Colors = s.Palette()
	data, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
