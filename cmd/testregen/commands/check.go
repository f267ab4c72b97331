package commands

import (
	"fmt"
	"os"

	"github.com/ShafSpecs/testregen/internal/config"
	"github.com/ShafSpecs/testregen/internal/fixtures"
	"github.com/ShafSpecs/testregen/internal/regen"
)

// CheckCmd implements the 'check' command, a CI guard that never writes.
type CheckCmd struct {
	File   string `arg:"" help:"Document whose generated test regions to verify."`
	Corpus string `help:"Fixture corpus root (default: from config)."`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stale, err := regen.Check(c.File, fixtures.NewDir(resolveCorpus(c.Corpus, cfg)))
	if err != nil {
		return err
	}

	if stale {
		fmt.Printf("%s is out of date; run 'testregen regen %s'\n", c.File, c.File)
		os.Exit(1)
	}
	fmt.Printf("%s is up to date\n", c.File)
	return nil
}
