package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	weatherservice "github.com/redjax/forecast/internal/services/weatherService"
	"github.com/redjax/forecast/internal/utils/path"
)

const EnvPrefix = "FORECAST_"

var K = koanf.New(".")

type APISettings struct {
	Key        string        `koanf:"key"`
	BaseURL    string        `koanf:"base_url"`
	OneCallURL string        `koanf:"onecall_url"`
	Timeout    time.Duration `koanf:"timeout"`
	Units      string        `koanf:"units"`
	Lang       string        `koanf:"lang"`
}

type LocateSettings struct {
	URL string `koanf:"url"`
}

type DisplaySettings struct {
	Locale   string `koanf:"locale"`
	Timezone string `koanf:"timezone"`
	Days     int    `koanf:"days"`
}

type HistorySettings struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// Settings is the resolved configuration of the app.
type Settings struct {
	API     APISettings     `koanf:"api"`
	Locate  LocateSettings  `koanf:"locate"`
	Display DisplaySettings `koanf:"display"`
	History HistorySettings `koanf:"history"`
}

var defaults = map[string]interface{}{
	"api.base_url":     weatherservice.DefaultBaseURL,
	"api.onecall_url":  "", // empty: same as api.base_url
	"api.timeout":      "10s",
	"api.units":        weatherservice.UnitsMetric,
	"api.lang":         "",
	"locate.url":       weatherservice.DefaultLocateURL,
	"display.locale":   "fr",
	"display.timezone": "local",
	"display.days":     0,
	"history.enabled":  true,
	"history.path":     "~/.local/share/forecast/history.db",
}

// flagKeys maps command-line flag names onto config keys. Unlisted flags are not config.
var flagKeys = map[string]string{
	"api-key":    "api.key",
	"units":      "api.units",
	"lang":       "api.lang",
	"locale":     "display.locale",
	"timezone":   "display.timezone",
	"days":       "display.days",
	"history-db": "history.path",
}

// LoadConfig layers defaults, the optional config file, FORECAST_* environment
// variables and finally command-line flags into K.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) error {
	K = koanf.New(".")
	for k, v := range defaults {
		if err := K.Set(k, v); err != nil {
			return fmt.Errorf("setting default %s: %w", k, err)
		}
	}

	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := K.Load(file.Provider(configFile), parser); err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
	}

	// FORECAST_API_BASE_URL -> api.base_url (only the first underscore is a level separator)
	if err := K.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := K.Load(posflag.ProviderWithFlag(flagSet, ".", K, flagKey(flagSet)), nil); err != nil {
			return fmt.Errorf("error loading flags: %w", err)
		}
	}

	return nil
}

// Get unmarshals and validates the loaded configuration.
func Get() (Settings, error) {
	var s Settings
	if err := K.Unmarshal("", &s); err != nil {
		return s, fmt.Errorf("error decoding config: %w", err)
	}

	if s.History.Path != "" {
		expanded, err := path.ExpandPath(s.History.Path)
		if err != nil {
			return s, err
		}
		s.History.Path = expanded
	}

	return s, s.Validate()
}

// Validate rejects settings the app cannot work with. A missing api key is
// reported later, by the weather client, so that offline commands still run.
func (s Settings) Validate() error {
	if !weatherservice.SupportedUnits(s.API.Units) {
		return fmt.Errorf("invalid api.units %q (want metric, imperial or standard)", s.API.Units)
	}
	if !weatherservice.SupportedLocale(s.Display.Locale) {
		return fmt.Errorf("unsupported display.locale %q", s.Display.Locale)
	}
	if _, err := weatherservice.ResolveZone(s.Display.Timezone); err != nil {
		return err
	}
	if s.Display.Days < 0 {
		return fmt.Errorf("display.days cannot be negative")
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	return nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
