package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotskills/dotskills/pkg/skill"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var installed bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(opts)
			if err != nil {
				return err
			}

			if installed {
				// An absent destination simply means nothing is installed
				skills, err := skill.Discover(env.fs, env.paths.DestSkillsDir())
				if err != nil {
					skills = nil
				}
				env.renderer.RenderSkillList(skills, "installed skills")
				return nil
			}

			plan, err := env.syncer.Plan()
			if err != nil {
				return err
			}
			env.renderer.RenderSkillList(plan.Skills, "available skills")
			return nil
		},
	}

	cmd.Flags().BoolVar(&installed, "installed", false, "List the destination instead of the source")

	return cmd
}
