package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/dotskills/dotskills/pkg/paths"
)

const skillTemplate = `---
name: %s
description: TODO describe what this skill does in one line
---

# %s

Explain when the agent should reach for this skill and how to use it.
`

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "init <name>",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv(opts)
			if err != nil {
				return err
			}

			name := args[0]
			skillDir := env.paths.SourceSkillPath(name)

			if _, err := env.fs.Stat(skillDir); err == nil {
				return errors.Newf(errors.ErrSkillExists, "skill %q already exists at %s", name, skillDir)
			}

			if opts.dryRun {
				fmt.Printf("Would create %s\n", filepath.Join(skillDir, paths.SkillFileName))
				return nil
			}

			if err := env.fs.MkdirAll(skillDir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", skillDir)
			}

			skillFile := filepath.Join(skillDir, paths.SkillFileName)
			content := fmt.Sprintf(skillTemplate, name, name)
			if err := env.fs.WriteFile(skillFile, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", skillFile)
			}

			fmt.Printf("Created %s\n", skillFile)
			return nil
		},
	}
}
