// Package cli wires configuration, logging and the query runner behind a
// cobra root command. Every invocation writes exactly one JSON document:
// the result on stdout, or an error envelope on stderr.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"marketadapter/internal/adapter"
	"marketadapter/internal/config"
	"marketadapter/internal/dispatch"
	"marketadapter/internal/platform"
)

// Options controls the process boundary of a run.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewSource builds the data source from the loaded configuration.
	// Defaults to the HTTP platform client.
	NewSource func(cfg *config.Config) platform.Source

	// Now overrides the adapter clock.
	Now func() time.Time
}

// ErrorEnvelope is written to stderr when a run fails.
type ErrorEnvelope struct {
	Error   string   `json:"error"`
	Command *string  `json:"command"`
	Args    []string `json:"args"`
}

// Run executes the command line args (without the program name) and returns
// the process exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	if opts.NewSource == nil {
		opts.NewSource = func(cfg *config.Config) platform.Source {
			return platform.New(cfg.Credentials(), cfg.Endpoints())
		}
	}

	var result any
	cmd := newRootCommand(opts, &result)
	cmd.SetArgs(args)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		writeError(opts.Stderr, err, cmd.Flags().Args())
		return 1
	}
	if result == nil {
		// help output
		return 0
	}

	enc := json.NewEncoder(opts.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		writeError(opts.Stderr, fmt.Errorf("failed to encode result: %w", err), cmd.Flags().Args())
		return 1
	}
	return 0
}

func newRootCommand(opts Options, result *any) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "marketadapter <command> <args>",
		Short: "Fetch market and economic data as JSON",
		Long: `marketadapter forwards a single query to a financial data provider and
prints the normalized result as JSON.

Commands:
  fundamentals <ticker> [provider]
  fred_series <series_id> [start_date] [end_date]
  quote <ticker> [provider]
  profile <ticker> [provider]
  check`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := dispatch.Parse(args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(opts.Stderr, &slog.HandlerOptions{Level: level})))

			var adapterOpts []adapter.Option
			if opts.Now != nil {
				adapterOpts = append(adapterOpts, adapter.WithClock(opts.Now))
			}
			runner := dispatch.NewRunner(adapter.New(opts.NewSource(cfg), adapterOpts...), cfg.Timeout)

			out, err := runner.Run(cmd.Context(), q)
			if err != nil {
				return err
			}
			*result = out
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.Duration("timeout", config.DefaultTimeout, "upstream request timeout (0 disables)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&configFile, "config", "", "config file (default is ./config.yaml or $HOME/.marketadapter/config.yaml)")
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	// Flags go before the command; everything from the command name on is
	// positional, so "quote -h" or a dash-prefixed ticker reaches dispatch.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// writeError renders err as a compact envelope. The command is the first
// positional argument and args are the ones after it.
func writeError(w io.Writer, err error, positional []string) {
	env := ErrorEnvelope{Error: err.Error(), Args: []string{}}
	if len(positional) > 0 {
		env.Command = &positional[0]
		env.Args = positional[1:]
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(env)
}
