package configloader

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/rcview/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence; only non-zero fields are applied.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (RCVIEW_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.rcview.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/rcview/config.yaml)
//  6. System config (/etc/rcview/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Paths: &ConfigPaths{}}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover config paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	cfg := config.NewConfig()

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := mergeFile(cfg, paths.System); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := mergeFile(cfg, paths.User); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if paths.Explicit != "" {
		if err := mergeFile(cfg, paths.Explicit); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Explicit)
	} else if paths.Project != "" {
		if err := mergeFile(cfg, paths.Project); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	mergeCLI(cfg, opts.CLIConfig)

	validation := Validate(cfg)
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	if !validation.Valid() {
		return nil, fmt.Errorf("invalid configuration: %s", validation.Errors[0].Error())
	}

	result.Config = cfg
	return result, nil
}

// mergeFile overlays a YAML config file onto cfg. Unknown fields are
// rejected so typos surface instead of silently doing nothing.
func mergeFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// mergeCLI applies non-zero CLI fields on top of cfg.
func mergeCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}
	if cli.Severities != "" {
		cfg.Severities = cli.Severities
	}
	if cli.Units != "" {
		cfg.Units = cli.Units
	}
	if len(cli.ExcludedCodes) > 0 {
		cfg.ExcludedCodes = cli.ExcludedCodes
	}
	if cli.Color != "" {
		cfg.Color = cli.Color
	}
	if cli.Interactive {
		cfg.Interactive = true
	}
}
