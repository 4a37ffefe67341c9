package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProbeCmd(flags *codecFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Show the period tokens and separator derived for a locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(cmd, flags)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(codec.Profile())
			if err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
