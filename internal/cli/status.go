package cli

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(opts)
			if err != nil {
				return err
			}

			status, err := env.syncer.Status()
			if err != nil {
				return err
			}

			env.renderer.RenderStatus(status)
			return nil
		},
	}
}
