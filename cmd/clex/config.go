package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "clex.toml"

type clexConfig struct {
	Output outputConfig `toml:"output"`
	Limits limitsConfig `toml:"limits"`
	Cache  cacheConfig  `toml:"cache"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Report string `toml:"report"`
	Color  string `toml:"color"`
}

type limitsConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
	Jobs           int `toml:"jobs"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

var (
	outputFormats = []string{"table", "json", "msgpack", "report"}
	colorModes    = []string{"auto", "on", "off"}
)

func defaultConfig() clexConfig {
	return clexConfig{
		Output: outputConfig{Format: "table", Color: "auto"},
		Limits: limitsConfig{MaxDiagnostics: 100},
	}
}

// findConfig ищет clex.toml от startDir вверх до корня.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig decodes path over the defaults. Unknown keys and bad values are
// errors naming the file and the key.
func loadConfig(path string) (clexConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return clexConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return clexConfig{}, fmt.Errorf("%s: unknown key(s): %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return clexConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	// относительные пути считаем от каталога конфига
	base := filepath.Dir(path)
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(base, cfg.Cache.Dir)
	}
	if cfg.Output.Report != "" && !filepath.IsAbs(cfg.Output.Report) {
		cfg.Output.Report = filepath.Join(base, cfg.Output.Report)
	}
	return cfg, nil
}

func (c *clexConfig) validate() error {
	if !oneOf(c.Output.Format, outputFormats) {
		return fmt.Errorf("[output].format: invalid value %q (expected %s)", c.Output.Format, strings.Join(outputFormats, "|"))
	}
	if !oneOf(c.Output.Color, colorModes) {
		return fmt.Errorf("[output].color: invalid value %q (expected %s)", c.Output.Color, strings.Join(colorModes, "|"))
	}
	if c.Limits.MaxDiagnostics < 0 {
		return fmt.Errorf("[limits].max_diagnostics: must be >= 0, got %d", c.Limits.MaxDiagnostics)
	}
	if c.Limits.Jobs < 0 {
		return fmt.Errorf("[limits].jobs: must be >= 0, got %d", c.Limits.Jobs)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// resolveConfig finds and loads clex.toml from the working directory, or
// returns the defaults when there is none.
func resolveConfig() (clexConfig, string, error) {
	path, ok, err := findConfig(".")
	if err != nil {
		return clexConfig{}, "", err
	}
	if !ok {
		return defaultConfig(), "", nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return clexConfig{}, "", err
	}
	return cfg, path, nil
}

const defaultConfigTemplate = `# clex configuration
[output]
format = "table"        # table|json|msgpack|report
report = "output.txt"   # report file written with --save
color = "auto"          # auto|on|off

[limits]
max_diagnostics = 100   # per file, 0 = all
jobs = 0                # 0 = GOMAXPROCS

[cache]
enabled = false
dir = ""                # default $XDG_CACHE_HOME/clex
`
