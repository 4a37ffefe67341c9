package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timefield/locale-time-codec/internal/domain"
)

func newFormatCmd(flags *codecFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format <H:MM[:SS[.fff]]>",
		Short: "Render a 24-hour time as localized text",
		Example: `  timecodec format 23:05:30 --locale en-US --step 1
  timecodec format 9:00:00.250 --pattern HH:mm:ss.SSS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tod, err := domain.ParseClock(args[0])
			if err != nil {
				return err
			}

			codec, err := newCodec(cmd, flags)
			if err != nil {
				return err
			}

			text, err := codec.FormatTime(&tod)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
