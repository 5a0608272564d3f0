// SPDX-License-Identifier: MIT
// Package config loads the spmat.yaml settings used by the CLI.
package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by default.
const FileName = "spmat.yaml"

// EnvPrefix marks environment variables that override the file, e.g.
// SPMAT_INPUT_DIR or SPMAT_LOG_LEVEL.
const EnvPrefix = "SPMAT_"

// Reader kinds.
const (
	ReaderFile = "file"
	ReaderMmap = "mmap"
)

var (
	// ErrInvalidReader is returned for an unknown reader kind.
	ErrInvalidReader = zerr.New("reader must be \"file\" or \"mmap\"")
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = zerr.New("log_level must be debug, info, warn or error")
	// ErrEmptyField is returned when a required setting is blank.
	ErrEmptyField = zerr.New("required setting is empty")
	// ErrUnknownKey is returned for a config file key spmat does not know.
	ErrUnknownKey = zerr.New("unknown config key")
	// ErrInvalidMaxCells is returned for a negative cell cap.
	ErrInvalidMaxCells = zerr.New("max_cells must be >= 0")
)

// Config holds CLI settings. Keys missing from the file keep defaults.
type Config struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	OutputFile  string `yaml:"output_file"`
	Extension   string `yaml:"extension"`
	LogLevel    string `yaml:"log_level"`
	Reader      string `yaml:"reader"`
	GrowToFit   bool   `yaml:"grow_to_fit"`
	Revalidate  bool   `yaml:"revalidate"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
	// MaxCells caps rows*cols of a loaded matrix; 0 disables the cap.
	MaxCells int64 `yaml:"max_cells,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		InputDir:   "sample_inputs",
		OutputDir:  "output",
		OutputFile: "result.txt",
		Extension:  ".txt",
		LogLevel:   "info",
		Reader:     ReaderFile,
	}
}

// Load layers, lowest first: defaults, the YAML file at path (skipped when
// missing or empty), then SPMAT_* environment variables. Unknown file keys
// are rejected; unknown variables are ignored. Flags are applied by the
// caller on top of the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(defaults(Default()), nil); err != nil {
		return Config{}, zerr.Wrap(err, "failed to load config defaults")
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	case info.Size() > 0:
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
		if err := checkKeys(fk.Keys()); err != nil {
			return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
		if err := k.Merge(fk); err != nil {
			return Config{}, zerr.With(zerr.Wrap(err, "failed to merge config file"), "path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, zerr.Wrap(err, "failed to read config from environment")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to decode config"), "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, zerr.With(err, "path", path)
	}

	return cfg, nil
}

// WriteYAML renders c in the file format Load reads.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return zerr.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}

// defaults is a koanf provider over a fixed key map.
type defaults Config

func (d defaults) toMap() map[string]any {
	return map[string]any{
		"input_dir":    d.InputDir,
		"output_dir":   d.OutputDir,
		"output_file":  d.OutputFile,
		"extension":    d.Extension,
		"log_level":    d.LogLevel,
		"reader":       d.Reader,
		"grow_to_fit":  d.GrowToFit,
		"revalidate":   d.Revalidate,
		"metrics_file": d.MetricsFile,
		"max_cells":    d.MaxCells,
	}
}

func (d defaults) Read() (map[string]any, error) {
	return d.toMap(), nil
}

func (defaults) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: defaults provider has no byte form")
}

func knownKey(key string) bool {
	_, ok := defaults{}.toMap()[key]
	return ok
}

func checkKeys(keys []string) error {
	var unknown []string
	for _, key := range keys {
		if !knownKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)

	return zerr.With(zerr.Wrap(ErrUnknownKey, "invalid config"), "keys", strings.Join(unknown, ","))
}

// envKey maps SPMAT_INPUT_DIR to input_dir. Unknown names map to "" and are
// skipped by the provider.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if !knownKey(key) {
		return ""
	}
	return key
}

// Validate checks enumerated and required fields.
func (c Config) Validate() error {
	for key, v := range map[string]string{
		"input_dir":   c.InputDir,
		"output_dir":  c.OutputDir,
		"output_file": c.OutputFile,
		"extension":   c.Extension,
	} {
		if strings.TrimSpace(v) == "" {
			return zerr.With(zerr.Wrap(ErrEmptyField, "invalid config"), "field", key)
		}
	}
	switch c.Reader {
	case ReaderFile, ReaderMmap:
	default:
		return zerr.With(zerr.Wrap(ErrInvalidReader, "invalid config"), "reader", c.Reader)
	}
	if c.MaxCells < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidMaxCells, "invalid config"), "max_cells", c.MaxCells)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return zerr.With(zerr.Wrap(ErrInvalidLogLevel, "invalid config"), "log_level", c.LogLevel)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog level, falling back to Info.
func (c Config) SlogLevel() slog.Level {
	lv, _ := parseLevel(c.LogLevel)
	return lv
}

// OutputPath is where operation results are written.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
