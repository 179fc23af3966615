package sync

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dotskills/dotskills/pkg/config"
	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/dotskills/dotskills/pkg/filesystem"
	"github.com/dotskills/dotskills/pkg/logging"
	"github.com/dotskills/dotskills/pkg/paths"
	"github.com/dotskills/dotskills/pkg/skill"
)

// Syncer performs source-to-home synchronization runs
type Syncer struct {
	fs    filesystem.FS
	paths *paths.Paths
	cfg   *config.Config
	log   zerolog.Logger
}

// Plan describes what a run will do, computed without touching the destination
type Plan struct {
	SourceRoot string
	DestRoot   string

	// HasConfigFile reports whether the instructions file exists in the source
	HasConfigFile bool

	// Skills to be installed, excludes already applied
	Skills []skill.Skill

	// Excluded skill names present in the source but configured away
	Excluded []string
}

// Result reports what a run installed
type Result struct {
	ConfigInstalled bool
	Skills          []skill.Skill
	BytesCopied     int64
	DryRun          bool
}

// New creates a Syncer
func New(fs filesystem.FS, p *paths.Paths, cfg *config.Config) *Syncer {
	return &Syncer{
		fs:    fs,
		paths: p,
		cfg:   cfg,
		log:   logging.GetLogger("sync"),
	}
}

// Plan validates the source and computes the work for a run.
// The source root must exist and contain the instructions file, the skills
// collection, or both; otherwise the run fails before any destructive step.
func (s *Syncer) Plan() (*Plan, error) {
	root := s.paths.SourceRoot()

	info, err := s.fs.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceNotFound, "source directory %q does not exist", root)
	}

	plan := &Plan{
		SourceRoot: root,
		DestRoot:   s.paths.DestRoot(),
	}

	if info, err := s.fs.Stat(s.paths.SourceConfigPath()); err == nil && !info.IsDir() {
		plan.HasConfigFile = true
	}

	hasSkillsDir := false
	if info, err := s.fs.Stat(s.paths.SourceSkillsDir()); err == nil && info.IsDir() {
		hasSkillsDir = true
	}

	if !plan.HasConfigFile && !hasSkillsDir {
		return nil, errors.Newf(errors.ErrSourceInvalid,
			"source %q contains neither %s nor a %s directory", root,
			s.paths.ConfigFileName(), s.paths.SkillsDirName())
	}

	if hasSkillsDir {
		all, err := skill.Discover(s.fs, s.paths.SourceSkillsDir())
		if err != nil {
			return nil, err
		}
		for _, sk := range all {
			if s.cfg.Excluded(sk.Name) {
				plan.Excluded = append(plan.Excluded, sk.Name)
				continue
			}
			plan.Skills = append(plan.Skills, sk)
		}
	}

	return plan, nil
}

// Install executes the plan: wipe and recreate the destination skills tree,
// copy the instructions file, copy each skill directory, then enumerate the
// destination for the manifest. Fail-fast; no rollback.
func (s *Syncer) Install(plan *Plan) (*Result, error) {
	done := logging.LogOperationStart(s.log, "install")
	defer done()

	result := &Result{}

	if err := s.fs.MkdirAll(plan.DestRoot, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create destination %s", plan.DestRoot)
	}

	destSkills := s.paths.DestSkillsDir()
	if err := s.fs.RemoveAll(destSkills); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRemove, "cannot remove %s", destSkills)
	}
	if err := s.fs.MkdirAll(destSkills, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destSkills)
	}
	s.log.Debug().Str("path", destSkills).Msg("Destination skills directory recreated")

	if plan.HasConfigFile {
		n, err := copyFile(s.fs, s.paths.SourceConfigPath(), s.paths.DestConfigPath())
		if err != nil {
			return nil, err
		}
		result.ConfigInstalled = true
		result.BytesCopied += n
		s.log.Info().Str("file", s.paths.ConfigFileName()).Msg("Installed instructions file")
	}

	for _, sk := range plan.Skills {
		n, err := copyTree(s.fs, sk.Path, s.paths.DestSkillPath(sk.Name))
		if err != nil {
			return nil, err
		}
		result.BytesCopied += n
		s.log.Info().Str("skill", sk.Name).Int64("bytes", n).Msg("Installed skill")
	}

	// The manifest reflects the destination, not the plan
	installed, err := skill.Discover(s.fs, destSkills)
	if err != nil {
		return nil, err
	}
	result.Skills = installed

	s.writeManifestRecord(result)

	return result, nil
}

// Preview returns the result a dry run would report, without touching
// the destination
func (s *Syncer) Preview(plan *Plan) *Result {
	return &Result{
		ConfigInstalled: plan.HasConfigFile,
		Skills:          plan.Skills,
		DryRun:          true,
	}
}

// writeManifestRecord persists the installed-skill list under the state
// directory. Best effort: the record is informational and a failure to
// write it must not fail an otherwise successful run.
func (s *Syncer) writeManifestRecord(result *Result) {
	if err := s.fs.MkdirAll(s.paths.StateDir(), 0755); err != nil {
		s.log.Warn().Err(err).Msg("Cannot create state directory, skipping manifest record")
		return
	}

	var b strings.Builder
	if result.ConfigInstalled {
		fmt.Fprintf(&b, "%s\n", s.paths.ConfigFileName())
	}
	for _, sk := range result.Skills {
		fmt.Fprintf(&b, "%s\t%s\n", sk.Name, sk.Description)
	}

	if err := s.fs.WriteFile(s.paths.ManifestPath(), []byte(b.String()), 0644); err != nil {
		s.log.Warn().Err(err).Msg("Cannot write manifest record")
	}
}
