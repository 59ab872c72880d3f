// Package config loads v2sc.toml files.
package config

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/naoina/toml"
	"github.com/tliron/commonlog"
	"v2sc/internal/ast"
	"v2sc/internal/codegen"
	"v2sc/internal/errors"
	"v2sc/internal/loader"
)

var log = commonlog.GetLogger("v2sc.config")

//go:embed schema.cue
var schemaSource []byte

// FileNames are the configuration files looked up in the working directory.
var FileNames = []string{"v2sc.toml", ".v2sc.toml"}

// Config is the contents of a v2sc.toml file.
type Config struct {
	Generator GeneratorConfig
	Frontend  FrontendConfig
	Log       LogConfig
}

type GeneratorConfig struct {
	IndentSize  int
	ClockName   string
	ResetName   string
	TemplateDir string
	MaxDepth    int
	Workers     int
}

type FrontendConfig struct {
	IncludePaths     []string
	Defines          map[string]string
	IncludeCacheSize int
}

type LogConfig struct {
	Verbosity int
	Path      string
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.Name())
	},
}

func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			IndentSize: codegen.DefaultIndentSize,
			ClockName:  codegen.DefaultClockName,
			ResetName:  codegen.DefaultResetName,
			MaxDepth:   codegen.DefaultMaxDepth,
			Workers:    1,
		},
		Frontend: FrontendConfig{
			IncludeCacheSize: loader.DefaultCacheSize,
		},
	}
}

// Find returns the configuration file to use. An explicit path wins, then
// the working directory, then ~/.config/v2sc/config.toml. It returns ""
// when there is none.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := append([]string(nil), FileNames...)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "v2sc", "config.toml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads a configuration file over the defaults. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, invalid(path, "%v", err)
	}
	defer f.Close()

	if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg); err != nil {
		if le, ok := err.(*toml.LineError); ok {
			return nil, errors.NewLoadError(errors.ErrorInvalidConfig,
				ast.Position{Filename: path, Line: le.Line, Column: 1}, "%v", le.Err)
		}
		return nil, invalid(path, "%v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, invalid(path, "%v", err)
	}
	log.Debugf("loaded configuration %s", path)
	return cfg, nil
}

func invalid(path, format string, args ...interface{}) error {
	return errors.NewLoadError(errors.ErrorInvalidConfig, ast.Position{Filename: path}, format, args...)
}

var schema = sync.OnceValues(func() (cue.Value, error) {
	v := cuecontext.New().CompileBytes(schemaSource)
	if v.Err() != nil {
		return cue.Value{}, fmt.Errorf("compiling schema: %w", v.Err())
	}
	def := v.LookupPath(cue.ParsePath("#Config"))
	if def.Err() != nil {
		return cue.Value{}, fmt.Errorf("looking up #Config definition: %w", def.Err())
	}
	return def, nil
})

// Validate checks the configuration against the embedded schema.
func (c *Config) Validate() error {
	def, err := schema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config to JSON: %w", err)
	}
	value := def.Context().CompileBytes(data)
	if value.Err() != nil {
		return fmt.Errorf("compiling config as CUE: %w", value.Err())
	}
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if c.Generator.ClockName == c.Generator.ResetName {
		return fmt.Errorf("clock and reset must be different signals, both are '%s'", c.Generator.ClockName)
	}
	return nil
}

func (c *Config) GeneratorOptions() codegen.Options {
	return codegen.Options{
		IndentSize: c.Generator.IndentSize,
		ClockName:  c.Generator.ClockName,
		ResetName:  c.Generator.ResetName,
		MaxDepth:   c.Generator.MaxDepth,
		Workers:    c.Generator.Workers,
	}
}

func (c *Config) LoaderOptions() loader.Options {
	defines := make(map[string]string, len(c.Frontend.Defines))
	for name, value := range c.Frontend.Defines {
		defines[name] = value
	}
	return loader.Options{
		IncludePaths: append([]string(nil), c.Frontend.IncludePaths...),
		Defines:      defines,
		CacheSize:    c.Frontend.IncludeCacheSize,
	}
}
