package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timefield/locale-time-codec/internal/domain"
)

func newParseCmd(flags *codecFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Read a time of day from localized text",
		Example: `  timecodec parse "11:05:30 PM" --locale en-US --step 1
  timecodec parse "١١:٠٥ م" --locale ar-EG`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(cmd, flags)
			if err != nil {
				return err
			}

			tod := codec.ParseTime(args[0])
			if tod == nil {
				return fmt.Errorf("%w: %q in %s", domain.ErrUnparseable, args[0], codec.Locale())
			}
			fmt.Fprintln(cmd.OutOrStdout(), tod.String())
			return nil
		},
	}
}
