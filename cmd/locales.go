package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spiffcs/prettydate/config"
	"github.com/spiffcs/prettydate/internal/format"
	"github.com/spiffcs/prettydate/internal/locale"
)

// NewCmdLocales creates the locales command.
func NewCmdLocales() *cobra.Command {
	return &cobra.Command{
		Use:   "locales [tag]",
		Short: "List built-in languages or show the words of one",
		Long: `Without arguments, list the built-in languages.

With a language tag, print every word used in relative timestamps for
that language, including translations from the config files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runLocalesList(cmd.OutOrStdout())
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runLocalesShow(cmd.OutOrStdout(), args[0], cfg.Translations)
		},
	}
}

func runLocalesList(out io.Writer) error {
	tags, err := locale.Available()
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Fprintln(out, tag)
	}
	return nil
}

func runLocalesShow(out io.Writer, tag string, extra locale.Translations) error {
	c, err := locale.New(tag, extra)
	if err != nil {
		return err
	}

	width := 0
	for _, key := range locale.Keys() {
		width = max(width, format.DisplayWidth(key))
	}

	fmt.Fprintf(out, "# %s\n", c.Tag())
	for _, key := range locale.Keys() {
		fmt.Fprintf(out, "%s  %s\n", format.PadRight(key, width), c.Localize(key))
	}
	return nil
}
