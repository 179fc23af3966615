package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dotskills/dotskills/pkg/display"
	"github.com/dotskills/dotskills/pkg/skill"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <skill>",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(opts)
			if err != nil {
				return err
			}

			s, err := skill.Find(env.fs, env.paths.SourceSkillsDir(), args[0])
			if err != nil {
				return err
			}

			noColor := opts.noColor || !isatty.IsTerminal(os.Stdout.Fd())
			fmt.Print(display.RenderMarkdown(s.Content, noColor))
			return nil
		},
	}
}
