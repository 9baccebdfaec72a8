package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "TICKETLINK_"

// AppName names the XDG directories
const AppName = "ticketlink"

// keys whose environment value is a comma separated list
var listKeys = map[string]bool{
	"prefixes": true,
	"sequence": true,
}

// keys whose environment value is an integer
var intKeys = map[string]bool{
	"matcher.timeout_ms": true,
}

// keys whose environment value is a boolean
var boolKeys = map[string]bool{
	"output.glamour": true,
}

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// ConfigFile is an explicit user file; it must exist
	ConfigFile string

	// NoUserConfig skips the XDG user file lookup
	NoUserConfig bool

	// NoEnv skips TICKETLINK_* environment variables
	NoEnv bool

	// Overrides are "key=value" settings applied over every other layer,
	// e.g. "environments.desktop=example.com"
	Overrides []string
}

// Load builds the effective configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}
	sources = append(sources, "defaults")

	// 2. User file
	path := opts.ConfigFile
	if path == "" && !opts.NoUserConfig {
		path = findUserConfig()
	}
	if path != "" {
		if err := loadFile(k, path, opts.ConfigFile != ""); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	// 3. Environment
	if !opts.NoEnv {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		values, err := ParseOverrides(opts.Overrides)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		sources = append(sources, "overrides")
	}

	if err := validateDocument(k.Raw()); err != nil {
		return nil, err
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = sources

	if err := cfg.Layout.Validate(); len(cfg.Layout.Sections) > 0 && err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid layout")
	}

	logger.Debug().
		Strs("sources", sources).
		Int("patterns", len(cfg.Patterns)).
		Int("environments", len(cfg.Environments.Configured())).
		Msg("configuration loaded")
	return cfg, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path).
			WithDetail("explicit", explicit)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigParse, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/ticketlink
func UserConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// findUserConfig returns the first existing user config file, or ""
func findUserConfig() string {
	dir := UserConfigDir()
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envValue maps TICKETLINK_SECTION_REST to "section.rest". The first
// underscore separates the section, so environment keys keep theirs:
// TICKETLINK_ENVIRONMENTS_REVIEW_APP sets environments.review_app.
func envValue(key, value string) (string, interface{}) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if section, rest, ok := strings.Cut(name, "_"); ok && !listKeys[name] {
		name = section + "." + rest
	}

	return name, typedValue(name, value)
}

// ParseOverrides turns "key=value" items into a flat koanf map. Values are
// converted the same way as environment values.
func ParseOverrides(items []string) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(items))
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "override %q is not key=value", item).
				WithDetail("override", item)
		}
		values[key] = typedValue(key, value)
	}
	return values, nil
}

func typedValue(name, value string) interface{} {
	switch {
	case listKeys[name]:
		items := []interface{}{}
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	case intKeys[name]:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	case boolKeys[name]:
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return value
}
