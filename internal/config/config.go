package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pkgpick/internal/app"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Output  selection.Format
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig   = "PKGPICK_CONFIG"
	envWidth    = "PKGPICK_WIDTH"
	envHeight   = "PKGPICK_HEIGHT"
	envTickRate = "PKGPICK_TICK_RATE"
	envManager  = "PKGPICK_MANAGER"
	envOutput   = "PKGPICK_OUTPUT"
	envTrace    = "PKGPICK_TRACE"
	envLogFile  = "PKGPICK_LOG_FILE"
)

const (
	DefaultTickRate = 250 * time.Millisecond
	MinTickRate     = 10 * time.Millisecond
)

// ErrInvalid marks every configuration error so callers can pick the exit
// status.
var ErrInvalid = errors.New("invalid configuration")

// Flags holds the command-line flags registered on a FlagSet.
type Flags struct {
	fs       *pflag.FlagSet
	config   *string
	width    *int
	height   *int
	tickRate *time.Duration
	manager  *string
	output   *string
	trace    *bool
	logFile  *string
}

// Bind registers the pkgpick flags on fs.
func Bind(fs *pflag.FlagSet) *Flags {
	return &Flags{
		fs:       fs,
		config:   fs.String("config", "", "path to a YAML config file"),
		width:    fs.Int("width", 0, "fixed viewport width in cells (0 uses terminal width)"),
		height:   fs.Int("height", 0, "fixed viewport height in rows (0 uses terminal height)"),
		tickRate: fs.Duration("tick-rate", DefaultTickRate, "interval between UI ticks"),
		manager:  fs.String("manager", "", "package manager for the install command (auto-detected when empty, \"none\" to disable)"),
		output:   fs.StringP("output", "o", string(selection.FormatText), "report format: text, yaml or json"),
		trace:    fs.Bool("trace", false, "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", "", "path to the log file"),
	}
}

// LoadArgs parses args on a fresh FlagSet and resolves them against environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("pkgpick", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return flags.Resolve(fs.Args(), environ)
}

// Resolve layers the parsed flags over the environment, the config file and
// the defaults, in that order of precedence.
func (f *Flags) Resolve(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := f.configPath(env)
	file, err := loadFile(path, explicit)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !file.loaded {
		path = ""
	}

	r := resolver{fs: f.fs, env: env}
	width, err := r.integer("width", envWidth, file.Width, *f.width)
	if err != nil {
		return Config{}, err
	}
	height, err := r.integer("height", envHeight, file.Height, *f.height)
	if err != nil {
		return Config{}, err
	}
	tickRate, err := r.duration("tick-rate", envTickRate, file.TickRate, *f.tickRate)
	if err != nil {
		return Config{}, err
	}
	trace, err := r.boolean("trace", envTrace, file.Trace, *f.trace)
	if err != nil {
		return Config{}, err
	}
	manager := r.str("manager", envManager, file.Manager, *f.manager)
	logFile := r.str("log-file", envLogFile, file.LogFile, *f.logFile)
	output, err := selection.ParseFormat(r.str("output", envOutput, file.Output, *f.output))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		App: app.Config{
			Width:    width,
			Height:   height,
			TickRate: tickRate,
			Manager:  manager,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Output: output,
		File:   path,
		Flags: map[string]string{
			"config":   path,
			"width":    strconv.Itoa(width),
			"height":   strconv.Itoa(height),
			"tickRate": tickRate.String(),
			"manager":  manager,
			"output":   string(output),
			"trace":    strconv.FormatBool(trace),
			"logFile":  logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

func (f *Flags) configPath(env map[string]string) (string, bool) {
	if f.fs.Changed("config") {
		return *f.config, true
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	return defaultConfigPath(env), false
}

type resolver struct {
	fs  *pflag.FlagSet
	env map[string]string
}

func (r resolver) envValue(key string) (string, bool) {
	v, ok := r.env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (r resolver) str(name, key string, file *string, value string) string {
	if r.fs.Changed(name) {
		return value
	}
	if v, ok := r.envValue(key); ok {
		return v
	}
	if file != nil {
		return *file
	}
	return value
}

func (r resolver) integer(name, key string, file *int, value int) (int, error) {
	if r.fs.Changed(name) {
		return value, nil
	}
	if v, ok := r.envValue(key); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
		}
		return parsed, nil
	}
	if file != nil {
		return *file, nil
	}
	return value, nil
}

func (r resolver) boolean(name, key string, file *bool, value bool) (bool, error) {
	if r.fs.Changed(name) {
		return value, nil
	}
	if v, ok := r.envValue(key); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, v)
		}
		return parsed, nil
	}
	if file != nil {
		return *file, nil
	}
	return value, nil
}

func (r resolver) duration(name, key string, file *string, value time.Duration) (time.Duration, error) {
	if r.fs.Changed(name) {
		return value, nil
	}
	raw, source := "", ""
	if v, ok := r.envValue(key); ok {
		raw, source = v, key
	} else if file != nil {
		raw, source = *file, "tick_rate"
	}
	if raw == "" {
		return value, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalid, source, raw)
	}
	return parsed, nil
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

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, cfg.App.Height)
	}
	if cfg.App.TickRate < MinTickRate {
		return fmt.Errorf("%w: tick rate must be at least %s (got %s)", ErrInvalid, MinTickRate, cfg.App.TickRate)
	}
	if _, err := selection.ParseFormat(string(cfg.Output)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := pkgmgr.Resolve(cfg.App.Manager); err != nil {
		return fmt.Errorf("%w: %v (known: %s)", ErrInvalid, err, strings.Join(pkgmgr.Names(), ", "))
	}
	return nil
}

// Report prints a configuration error the way the command line shows it.
func Report(w io.Writer, err error) {
	fmt.Fprintf(w, "Configuration error: %v\n", err)
}

