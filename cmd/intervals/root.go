package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/intervals"
	"github.com/aretw0/intervals/internal/platform"
	"github.com/aretw0/intervals/pkg/core"
)

var (
	verbose    bool
	configPath string
	// serviceOpts holds the options resolved from flags and config.
	serviceOpts []platform.Option
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intervals",
	Short: "Construct and identify musical intervals",
	Long: `intervals derives the note an interval away from a start note, names the
interval between two notes, grades worksheet files of such exercises and
exports intervals as MIDI files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var opts []platform.Option

		path := configPath
		if path == "" {
			if found, err := platform.FindConfig("."); err == nil {
				path = found
			}
		}
		if path != "" {
			cfg, err := platform.LoadConfig(path)
			if err != nil {
				fatal("Error loading config", err)
			}
			verbose = verbose || cfg.Verbose
			opts = append(opts, cfg.Options()...)
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		handlerOpts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
		slog.SetDefault(logger)

		serviceOpts = append(opts, platform.WithLogger(logger))
		if path != "" {
			s := platform.Resolve(serviceOpts...)
			logger.Debug("config loaded", "path", path, "workers", s.Workers, "pattern", s.SheetPattern)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: nearest "+platform.ConfigFile+")")
}

// newService builds a runtime from the resolved options; extra options
// (typically from command flags) take precedence.
func newService(extra ...intervals.Option) *intervals.Runtime {
	rt, err := intervals.New(append(serviceOpts, extra...)...)
	if err != nil {
		fatal("Error initializing service", err)
	}
	return rt
}

// answer is the JSON form of a single calculation.
type answer struct {
	Op        string   `json:"op"`
	Args      []string `json:"args"`
	Result    string   `json:"result,omitempty"`
	Error     string   `json:"error,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printAnswer writes the result of a calculation and exits non-zero on failure.
func printAnswer(cmd *cobra.Command, asJSON bool, op string, args []string, result string, err error) {
	if asJSON {
		a := answer{Op: op, Args: args, Result: result}
		if err != nil {
			a.Error = err.Error()
			a.ErrorKind = core.ErrorKind(err)
		}
		if encErr := writeJSON(cmd.OutOrStdout(), a); encErr != nil {
			fatal("Error encoding JSON", encErr)
		}
		if err != nil {
			os.Exit(1)
		}
		return
	}

	if err != nil {
		fatal("Error", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
}
