package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	merrors "github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides
const EnvPrefix = "MERGEFUL_"

// candidateNames are looked up, in order, in the working directory
var candidateNames = []string{"mergeful.toml", "mergeful.yaml", "mergeful.yml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// FindConfigFile returns the first job file found in dir, falling back to
// $XDG_CONFIG_HOME/mergeful/config.toml
func FindConfigFile(dir string) (string, error) {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	xdg.Reload()
	userPath := filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	}

	return "", merrors.Newf(merrors.ErrConfigLoad, "no job file found (looked for %s in %s and %s)",
		strings.Join(candidateNames, ", "), dir, userPath)
}

// Load reads the job file at path and layers defaults, environment and
// overrides around it. overrides may be nil.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to load defaults: "+err.Error())
	}

	// 2. Job file
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, merrors.Wrapf(err, merrors.ErrConfigLoad, "failed to load config from %s: %v", path, err).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to load env vars: "+err.Error())
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to load overrides: "+err.Error())
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, merrors.Wrapf(err, merrors.ErrConfigValid, "failed to unmarshal configuration: %v", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg.Dir = filepath.Dir(abs)

	logger.Debug().
		Str("path", path).
		Str("format", cfg.Format).
		Int("jobs", len(cfg.Jobs)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, merrors.Newf(merrors.ErrConfigLoad, "unsupported config file type: %s", path).
			WithDetail("path", path)
	}
}
