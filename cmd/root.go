package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spiffcs/prettydate/config"
	"github.com/spiffcs/prettydate/internal/format"
	"github.com/spiffcs/prettydate/internal/log"
	"github.com/spiffcs/prettydate/internal/output"
	"github.com/spiffcs/prettydate/timestamp"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   "prettydate [flags] <time> [<time>]",
		Short: "Describe how long ago a time was",
		Long: `Describe the gap between two times in words, e.g. "4 weeks ago".

With one time, the gap to now is described. With two, the gap between
them is described; their order does not matter. With no arguments and
piped input, every line of stdin is described relative to now.

Times may be RFC 3339, YYYY-MM-DD[ HH:MM[:SS]], unix seconds, "now",
or an age such as 5m, 3d, 2w, 6mo, 1y.

The output template understands %i (interval), %u (unit) and %c ("ago").`,
		Args: cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Initialize(opts.Verbosity, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.Flags().StringVarP(&opts.Format, "format", "f", "", `Output template (default "%i %u %c")`)
	rootCmd.Flags().StringVarP(&opts.Locale, "locale", "l", "", "Language for unit names (e.g. en, de, fr, es)")
	rootCmd.Flags().StringVar(&opts.Timezone, "tz", "", "Timezone for counting days and months (default: local)")
	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output mode (text, table, json)")
	rootCmd.Flags().StringVar(&opts.Now, "now", "", "Reference time instead of the current time")
	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdLocales())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyOptions(cfg, opts); err != nil {
		return err
	}
	log.Info("configuration resolved", "format", cfg.Format, "locale", cfg.Locale, "timezone", cfg.Timezone, "output", cfg.Output)

	inputs := args
	if len(inputs) == 0 {
		if stdinIsTerminal() {
			return fmt.Errorf("requires a time argument or piped input (see --help)")
		}
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	results, err := describe(cfg, opts.Now, inputs, len(args) == 2)
	if err != nil {
		return err
	}

	return output.NewFormatter(output.Format(cfg.Output)).Format(results, cmd.OutOrStdout())
}

// applyOptions layers command-line flags over the loaded configuration.
func applyOptions(cfg *config.Config, opts *Options) error {
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if opts.Timezone != "" {
		cfg.Timezone = opts.Timezone
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	return config.ValidateOutput(cfg.Output)
}

// describe parses inputs and renders each one. When pair is set the two
// inputs are measured against each other; otherwise each is measured
// against the reference time.
func describe(cfg *config.Config, nowArg string, inputs []string, pair bool) ([]output.Result, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	localizer, err := cfg.Localizer()
	if err != nil {
		return nil, err
	}
	log.Debug("locale negotiated", "requested", cfg.Locale, "resolved", localizer.Tag().String())

	now := time.Now().In(loc)
	if nowArg != "" {
		if now, err = parseTime(nowArg, now, loc); err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
	}

	f, err := cfg.Formatter(timestamp.WithLocalizer(tracingLocalizer{localizer}))
	if err != nil {
		return nil, err
	}

	if pair {
		a, err := parseTime(inputs[0], now, loc)
		if err != nil {
			return nil, err
		}
		b, err := parseTime(inputs[1], now, loc)
		if err != nil {
			return nil, err
		}
		return []output.Result{result(f, cfg.Format, inputs[0]+" .. "+inputs[1], a, b)}, nil
	}

	results := make([]output.Result, 0, len(inputs))
	for _, in := range inputs {
		t, err := parseTime(in, now, loc)
		if err != nil {
			return nil, err
		}
		results = append(results, result(f, cfg.Format, in, t, now))
	}
	return results, nil
}

func result(f *timestamp.Formatter, tmpl, input string, from, to time.Time) output.Result {
	d := f.Difference(from, to)
	log.Debug("calendar difference", "input", input, "from", from, "to", to,
		"years", d.Years, "months", d.Months, "weeks", d.Weeks,
		"days", d.Days, "hours", d.Hours, "minutes", d.Minutes)

	return output.Result{
		Input:      input,
		From:       from,
		To:         to,
		Relative:   f.Describe(d, tmpl),
		Age:        format.Age(d),
		Difference: d,
	}
}

// tracingLocalizer logs every word lookup at trace level.
type tracingLocalizer struct {
	timestamp.Localizer
}

func (t tracingLocalizer) Localize(key string) string {
	v := t.Localizer.Localize(key)
	log.Trace("localize", "key", key, "value", v)
	return v
}

var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
