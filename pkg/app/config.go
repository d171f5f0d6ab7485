package app

import (
	"flag"
	"fmt"
	"os"

	"github.com/arenvale/logpool/pkg/logpool"
	"github.com/titanous/json5"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	ConfigPath string
	Verbosity  string
	MaxSize    int
	NoEcho     bool
	Dump       bool

	given map[string]bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{given: map[string]bool{}}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to a json5 config file.")
	flag.StringVar(&args.Verbosity, "verbosity", "debug", "Echo threshold: silent, error, warn, info or debug.")
	flag.IntVar(&args.MaxSize, "max-size", logpool.DefaultMaxSize, "Maximum number of entries kept in memory.")
	flag.BoolVar(&args.NoEcho, "no-echo", false, "Keep entries without echoing them to the console pane.")
	flag.BoolVar(&args.Dump, "dump", false, "Print the retained entries to stdout after the viewer exits.")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { args.given[f.Name] = true })

	return args
}

// Given reports whether the named flag was set explicitly on the command line.
func (a *CLIArgs) Given(name string) bool {
	return a.given[name]
}

// Config holds the viewer settings. File values override the defaults and
// explicit flags override the file.
type Config struct {
	Verbosity string `json:"verbosity"`
	MaxSize   int    `json:"maxSize"`
	Echo      bool   `json:"echo"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Verbosity: "debug",
		MaxSize:   logpool.DefaultMaxSize,
		Echo:      true,
	}
}

// LoadConfig reads a json5 config file on top of the defaults. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config from %s: %w", path, err)
	}
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config from %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveConfig combines the defaults, the optional config file and the
// explicit flags into the final settings, then validates them.
func ResolveConfig(args *CLIArgs) (Config, error) {
	cfg := DefaultConfig()
	if args.ConfigPath != "" {
		loaded, err := LoadConfig(args.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if args.Given("verbosity") {
		cfg.Verbosity = args.Verbosity
	}
	if args.Given("max-size") {
		cfg.MaxSize = args.MaxSize
	}
	if args.Given("no-echo") {
		cfg.Echo = !args.NoEcho
	}

	if _, err := logpool.ParseVerbosity(cfg.Verbosity); err != nil {
		return Config{}, fmt.Errorf("validating config verbosity %q: %w", cfg.Verbosity, err)
	}
	return cfg, nil
}

// NewPool constructs the pool the config describes. Echo disabled maps to
// a LevelSilent threshold: entries are retained but never echoed.
func (c Config) NewPool() (*logpool.Pool, error) {
	verbosity, err := logpool.ParseVerbosity(c.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("validating config verbosity %q: %w", c.Verbosity, err)
	}
	if !c.Echo {
		verbosity = logpool.LevelSilent
	}
	return logpool.New(verbosity, c.MaxSize), nil
}
