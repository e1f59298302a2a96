package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/cheatmenu/internal/app"
	"github.com/atomicstack/cheatmenu/internal/version"
)

// ErrVersion is returned by Load when --version was requested.
var ErrVersion = errors.New("version requested")

// ErrMissingSource reports that no entries file was named.
var ErrMissingSource = errors.New("an entries file is required")

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
	envFile       = "CHEATMENU_FILE"
	envPrintOnly  = "CHEATMENU_PRINT"
	envGroup      = "CHEATMENU_GROUP"
	envWidth      = "CHEATMENU_WIDTH"
	envHeight     = "CHEATMENU_HEIGHT"
	envShowFooter = "CHEATMENU_FOOTER"
	envTrace      = "CHEATMENU_TRACE"
	envLogFile    = "CHEATMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The entries file
// may be given with --file or as the single positional argument.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs, f := newFlagSet(env)
	fs.SetOutput(new(strings.Builder))

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *f.version {
		return Config{}, ErrVersion
	}

	source := *f.file
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		if source != "" && source != rest[0] {
			return Config{}, fmt.Errorf("entries file given twice (%q and %q)", source, rest[0])
		}
		source = rest[0]
	default:
		return Config{}, fmt.Errorf("expected one entries file, got %d arguments", len(rest))
	}

	if *f.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *f.width)
	}
	if *f.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *f.height)
	}

	cfg := Config{
		App: app.Config{
			SourcePath: source,
			Width:      *f.width,
			Height:     *f.height,
			ShowFooter: *f.footer,
			PrintOnly:  *f.printOnly,
			Group:      *f.group,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"file":    source,
			"print":   strconv.FormatBool(*f.printOnly),
			"group":   *f.group,
			"width":   strconv.Itoa(*f.width),
			"height":  strconv.Itoa(*f.height),
			"footer":  strconv.FormatBool(*f.footer),
			"trace":   strconv.FormatBool(*f.trace),
			"logFile": *f.logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

type flagValues struct {
	file      *string
	printOnly *bool
	group     *string
	width     *int
	height    *int
	footer    *bool
	trace     *bool
	logFile   *string
	version   *bool
}

func newFlagSet(env map[string]string) (*flag.FlagSet, flagValues) {
	fs := flag.NewFlagSet(version.Name, flag.ContinueOnError)
	return fs, flagValues{
		file:      fs.String("file", envOrDefault(env, envFile, ""), "path to the entries file"),
		printOnly: fs.Bool("print", envOrBool(env, envPrintOnly, false), "print the selected command instead of copying it"),
		group:     fs.String("group", envOrDefault(env, envGroup, ""), "open the group best matching this name"),
		width:     fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:    fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:    fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help row"),
		trace:     fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:   fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		version:   fs.Bool("version", false, "print the version and exit"),
	}
}

// Usage renders the flag help text.
func Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s [flags] <entries-file>\n\n", version.Name)
	fs, _ := newFlagSet(nil)
	fs.SetOutput(&b)
	fs.PrintDefaults()
	return b.String()
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
	parsed, err := strconv.Atoi(v)
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
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. --help and --version exit 0.
func MustLoad() Config {
	cfg, err := Load()
	switch {
	case err == nil:
		return cfg
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	case errors.Is(err, ErrVersion):
		fmt.Fprintf(os.Stdout, "%s %s\n", version.Name, version.Version)
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	fmt.Fprint(os.Stderr, Usage())
	os.Exit(2)
	return Config{}
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.SourcePath) == "" {
		return ErrMissingSource
	}
	return nil
}
