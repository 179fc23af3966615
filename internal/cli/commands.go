package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotskills/dotskills/internal/version"
	"github.com/dotskills/dotskills/pkg/config"
	"github.com/dotskills/dotskills/pkg/display"
	"github.com/dotskills/dotskills/pkg/filesystem"
	"github.com/dotskills/dotskills/pkg/logging"
	"github.com/dotskills/dotskills/pkg/paths"
	"github.com/dotskills/dotskills/pkg/sync"
)

// globalOptions holds the flags shared by all commands
type globalOptions struct {
	verbosity int
	dryRun    bool
	noColor   bool
	source    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotskills",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.source, "source", "", "Source root (default: DOTSKILLS_ROOT, then the working directory)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))

	return rootCmd
}

// runEnv bundles the wired-up dependencies for one command invocation
type runEnv struct {
	paths    *paths.Paths
	cfg      *config.Config
	fs       filesystem.FS
	syncer   *sync.Syncer
	renderer *display.Renderer
}

// newRunEnv resolves the source root, loads configuration, and wires the
// syncer and renderer
func newRunEnv(opts *globalOptions) (*runEnv, error) {
	// First pass resolves the source root with default names; the config
	// found there decides the names for the real Paths instance.
	probe, err := paths.New(opts.source)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(probe.SourceRoot())
	if err != nil {
		return nil, err
	}

	p, err := paths.New(opts.source,
		paths.WithDestDirName(cfg.DestDir),
		paths.WithConfigFileName(cfg.ConfigFile),
		paths.WithSkillsDirName(cfg.SkillsDir),
	)
	if err != nil {
		return nil, err
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, "Using current directory as source: %s\n", p.SourceRoot())
		fmt.Fprintf(os.Stderr, "Set %s or pass --source to silence this.\n\n", paths.EnvSkillsRoot)
	}

	fs := filesystem.NewOS()

	renderer := display.NewAutoRenderer(os.Stdout)
	if opts.noColor {
		renderer = display.NewRenderer(os.Stdout, true)
	}

	return &runEnv{
		paths:    p,
		cfg:      cfg,
		fs:       fs,
		syncer:   sync.New(fs, p, cfg),
		renderer: renderer,
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotskills version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
