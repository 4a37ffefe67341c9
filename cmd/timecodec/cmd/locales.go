package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timefield/locale-time-codec/internal/adapter/cldr"
)

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales [prefix]",
		Short: "List the locales with CLDR time data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, id := range cldr.SupportedLocales() {
				if !strings.HasPrefix(id, prefix) {
					continue
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
