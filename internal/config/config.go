package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/command-dashboard/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog    = "COMMAND_DASHBOARD_CATALOG"
	envWidth      = "COMMAND_DASHBOARD_WIDTH"
	envHeight     = "COMMAND_DASHBOARD_HEIGHT"
	envShowFooter = "COMMAND_DASHBOARD_FOOTER"
	envVerbose    = "COMMAND_DASHBOARD_VERBOSE"
	envTrace      = "COMMAND_DASHBOARD_TRACE"
	envLogFile    = "COMMAND_DASHBOARD_LOG_FILE"
	envCategory   = "COMMAND_DASHBOARD_CATEGORY"
	envList       = "COMMAND_DASHBOARD_LIST"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("command-dashboard", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML command catalog (defaults to the built-in catalog)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log every navigation change")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	category := fs.String("category", envOrDefault(env, envCategory, ""), "open this category before the first frame")
	list := fs.Bool("list", envOrBool(env, envList, false), "print the catalog and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:   *catalogPath,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			StartCategory: *category,
			List:          *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":  *catalogPath,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
			"category": *category,
			"list":     strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects negative viewport sizes and a catalog path that cannot be
// read.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.CatalogPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.CatalogPath)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("catalog: %s is a directory", cfg.App.CatalogPath)
	}
	return nil
}
