package sync

import (
	"sort"

	"github.com/dotskills/dotskills/pkg/skill"
)

// State describes how a destination entry relates to the source
type State string

const (
	StateUpToDate State = "up-to-date" // Installed and identical to the source
	StateMissing  State = "missing"    // In the source, not installed
	StateStale    State = "stale"      // Installed, gone from the source
	StateChanged  State = "changed"    // Installed but differs from the source
)

// SkillStatus is the state of one skill
type SkillStatus struct {
	Name        string
	Description string
	State       State
}

// Status is the full source/destination comparison
type Status struct {
	// HasConfigFile reports whether the source carries an instructions file
	HasConfigFile bool

	// ConfigState is meaningful only when HasConfigFile is true
	ConfigState State

	Skills []SkillStatus
}

// Status compares the source against the destination without modifying
// either side.
func (s *Syncer) Status() (*Status, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}

	status := &Status{HasConfigFile: plan.HasConfigFile}

	if plan.HasConfigFile {
		status.ConfigState = s.configState()
	}

	installed := map[string]skill.Skill{}
	if entries, err := skill.Discover(s.fs, s.paths.DestSkillsDir()); err == nil {
		for _, sk := range entries {
			installed[sk.Name] = sk
		}
	}

	seen := map[string]bool{}
	for _, sk := range plan.Skills {
		seen[sk.Name] = true

		st := SkillStatus{Name: sk.Name, Description: sk.Description}
		dest, ok := installed[sk.Name]
		switch {
		case !ok:
			st.State = StateMissing
		default:
			equal, err := treesEqual(s.fs, sk.Path, dest.Path)
			if err != nil {
				return nil, err
			}
			if equal {
				st.State = StateUpToDate
			} else {
				st.State = StateChanged
			}
		}
		status.Skills = append(status.Skills, st)
	}

	for name, sk := range installed {
		if !seen[name] {
			status.Skills = append(status.Skills, SkillStatus{
				Name:        name,
				Description: sk.Description,
				State:       StateStale,
			})
		}
	}

	sort.Slice(status.Skills, func(i, j int) bool {
		return status.Skills[i].Name < status.Skills[j].Name
	})

	return status, nil
}

func (s *Syncer) configState() State {
	if _, err := s.fs.Stat(s.paths.DestConfigPath()); err != nil {
		return StateMissing
	}

	equal, err := filesEqual(s.fs, s.paths.SourceConfigPath(), s.paths.DestConfigPath())
	if err != nil {
		return StateChanged
	}
	if equal {
		return StateUpToDate
	}
	return StateChanged
}
