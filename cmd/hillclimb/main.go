// Command hillclimb reads a letter heightmap and prints two answers: the
// fewest steps from 'S' to 'E', and the fewest steps to 'E' from any
// lowest-elevation cell.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

//go:embed sample.txt
var sampleInput string

var (
	log = logrus.New()

	configPath string
	config     *Config
	useSample  bool
	verbose    bool
)

// flag-backed overrides, applied only when the flag is set on the command line
var (
	flagInput       string
	flagStrategy    string
	flagMultiSource string
	flagWorkers     int
	flagPrune       bool
	flagVerify      bool
	flagTimeout     time.Duration
)

func init() {
	const (
		configUsage = "config file path (JSON)"
		inputUsage  = "heightmap file, - for stdin"
	)
	flag.StringVar(&configPath, "config", "", configUsage)
	flag.StringVar(&configPath, "c", "", configUsage+" (shorthand)")
	flag.StringVar(&flagInput, "input", "-", inputUsage)
	flag.StringVar(&flagInput, "i", "-", inputUsage+" (shorthand)")
	flag.BoolVar(&useSample, "sample", false, "solve the built-in sample heightmap")
	flag.StringVar(&flagStrategy, "strategy", "bfs", "search strategy: bfs, dijkstra or scan")
	flag.StringVar(&flagMultiSource, "mode", modeForward, "multi-source mode: forward or reverse")
	flag.IntVar(&flagWorkers, "workers", 1, "concurrent multi-source searches")
	flag.BoolVar(&flagPrune, "prune", true, "bound multi-source searches by the best so far")
	flag.BoolVar(&flagVerify, "verify", false, "cross-check answers against a reverse sweep")
	flag.DurationVar(&flagTimeout, "timeout", 0, "abort after this long (0 = no limit)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(c *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input", "i":
			c.Input = flagInput
		case "strategy":
			c.Strategy = flagStrategy
		case "mode":
			c.MultiSource = flagMultiSource
		case "workers":
			c.Workers = flagWorkers
		case "prune":
			c.Prune = flagPrune
		case "verify":
			c.Verify = flagVerify
		case "timeout":
			c.Timeout.Duration = flagTimeout
		}
	})
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() || verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if config.Log.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.Log.File,
		MaxSize:    config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAge:     config.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return fmt.Errorf("unable to set up log file: %w", err)
	}
	log.AddHook(hook)

	return nil
}

// openInput returns the heightmap source selected by the config and flags.
func openInput() (io.ReadCloser, string, error) {
	switch {
	case useSample:
		return io.NopCloser(strings.NewReader(sampleInput)), "sample", nil
	case config.Input == "" || config.Input == "-":
		return io.NopCloser(os.Stdin), "stdin", nil
	default:
		f, err := os.Open(config.Input)
		if err != nil {
			return nil, "", err
		}
		return f, config.Input, nil
	}
}

func main() {
	os.Exit(realMain())
}

// realMain does the work of main and returns the process exit code, so
// deferred cleanup runs before the process exits.
func realMain() int {
	flag.Parse()

	var err error
	config, err = LoadConfig(configPath)
	if err != nil {
		log.Error(err)
		return 1
	}
	applyFlags(config)
	if err := setupLogging(); err != nil {
		log.Error(err)
		return 1
	}
	if err := config.Validate(); err != nil {
		log.Error("invalid config: ", err)
		return 1
	}
	log.WithFields(config.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if config.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		mainCtx, cancel = context.WithTimeout(mainCtx, config.Timeout.Duration)
		defer cancel()
	}

	in, name, err := openInput()
	if err != nil {
		log.Error("unable to open input: ", err)
		return 1
	}
	defer in.Close()

	if err := run(mainCtx, *config, in, os.Stdout); err != nil {
		log.WithField("input", name).Error(err)
		return 1
	}

	return 0
}

// run parses the heightmap, solves both queries and writes the answers.
func run(ctx context.Context, c Config, in io.Reader, out io.Writer) error {
	ans, err := solveInput(ctx, c, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n", ans.Start, ans.Best)

	return err
}
