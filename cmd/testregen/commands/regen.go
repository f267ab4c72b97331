package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ShafSpecs/testregen/internal/config"
	"github.com/ShafSpecs/testregen/internal/fixtures"
	"github.com/ShafSpecs/testregen/internal/logfields"
	"github.com/ShafSpecs/testregen/internal/regen"
)

// RegenCmd implements the 'regen' command.
type RegenCmd struct {
	File         string `arg:"" help:"Document whose generated test regions to rewrite."`
	Corpus       string `help:"Fixture corpus root (default: from config)."`
	BackupSuffix string `help:"Suffix for the backup rename (default: from config)."`
	RequireClean bool   `help:"Refuse to rewrite when the git work tree has uncommitted changes."`
}

func (r *RegenCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runID := uuid.NewString()
	corpus := resolveCorpus(r.Corpus, cfg)

	slog.Info("Regenerating document",
		logfields.RunID(runID),
		logfields.File(r.File),
		logfields.Corpus(corpus))

	start := time.Now()
	res, err := regen.RegenerateFile(r.File, fixtures.NewDir(corpus), regen.Options{
		BackupSuffix: resolveBackupSuffix(r.BackupSuffix, cfg),
		RequireClean: cfg.Git.RequireClean || r.RequireClean,
	})
	if err != nil {
		return err
	}

	slog.Info("Regeneration complete",
		logfields.RunID(runID),
		logfields.File(res.Path),
		logfields.Backup(res.Backup),
		logfields.Regions(res.Regions),
		logfields.Fixtures(res.Fixtures),
		logfields.DurationMS(time.Since(start).Seconds()*1000))

	if !res.Changed {
		fmt.Println("Document already up to date")
	}
	return nil
}
