package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ShafSpecs/testregen/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"testregen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Regen RegenCmd `cmd:"" help:"Regenerate the generated test regions of a document"`
	Check CheckCmd `cmd:"" help:"Verify a document's generated regions are up to date"`
	List  ListCmd  `cmd:"" help:"List fixture groups under the corpus root"`
	Show  ShowCmd  `cmd:"" help:"Show one fixture of a group"`
	Watch WatchCmd `cmd:"" help:"Regenerate on every fixture corpus change"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveCorpus picks the fixture corpus root. Priority: command flag >
// config > config default.
func resolveCorpus(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Fixtures.Root
}

// resolveBackupSuffix picks the backup suffix with the same priority order.
func resolveBackupSuffix(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Backup.Suffix
}
