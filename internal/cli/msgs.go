package cli

// Message constants
const (
	MsgRootShort = "Install agent skills and instructions into your home directory"
	MsgRootLong  = `dotskills synchronizes an agent configuration repository into your home
directory: an instructions file (AGENTS.md) plus a collection of skill
directories, each carrying a SKILL.md describing what it does.

Every install is a full resync: skills removed from the source are removed
from the destination, never merged around.`

	MsgInstallShort = "Synchronize the source into the destination"
	MsgInstallLong  = `Install replaces the destination skills directory with the skills found in
the source, copies the instructions file, and prints a manifest of what was
installed.

The destination skills tree is deleted and recreated on every run, so the
result always matches the current source. There is no backup and no
rollback; a failure partway through leaves the destination partially
updated, and re-running converges it.`
	MsgInstallExample = `  # Install from the current directory
  dotskills install

  # Install from an explicit source
  dotskills install --source ~/agent-config

  # Preview without touching the destination
  dotskills install --dry-run`

	MsgListShort = "List skills with their descriptions"
	MsgListLong  = `List shows the skills in the source, or with --installed the skills
currently present in the destination.`
	MsgListExample = `  # Skills in the source
  dotskills list

  # Skills installed in the destination
  dotskills list --installed`

	MsgStatusShort = "Compare the source against the destination"
	MsgStatusLong  = `Status reports, per skill, whether the installed copy is up to date,
missing, changed, or stale (installed but gone from the source).`

	MsgShowShort = "Render a skill's SKILL.md"
	MsgShowLong  = `Show renders the named skill's SKILL.md body to the terminal.`

	MsgInitShort = "Scaffold a new skill in the source"
	MsgInitLong  = `Init creates skills/<name>/SKILL.md in the source with frontmatter ready
to fill in. It refuses to overwrite an existing skill.`
	MsgInitExample = `  dotskills init code-review`
)
