package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotskills/dotskills/pkg/sync"
)

func newInstallCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(opts)
			if err != nil {
				return err
			}

			plan, err := env.syncer.Plan()
			if err != nil {
				return err
			}

			var result *sync.Result
			if opts.dryRun {
				result = env.syncer.Preview(plan)
			} else {
				result, err = env.syncer.Install(plan)
				if err != nil {
					return err
				}
			}

			env.renderer.RenderManifest(result, env.paths.DestRoot())
			return nil
		},
	}
}
