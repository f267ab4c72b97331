package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ShafSpecs/testregen/internal/config"
	"github.com/ShafSpecs/testregen/internal/fixtures"
	"github.com/ShafSpecs/testregen/internal/logfields"
	"github.com/ShafSpecs/testregen/internal/regen"
	"github.com/ShafSpecs/testregen/internal/watch"
)

// WatchCmd implements the 'watch' command: regenerate once, then again on
// every settled corpus change until interrupted.
type WatchCmd struct {
	File         string        `arg:"" help:"Document whose generated test regions to keep fresh."`
	Corpus       string        `help:"Fixture corpus root (default: from config)."`
	BackupSuffix string        `help:"Suffix for the backup rename (default: from config)."`
	RequireClean bool          `help:"Refuse to rewrite when the git work tree has uncommitted changes."`
	Debounce     time.Duration `help:"Quiet period before regenerating after a change." default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	corpus := resolveCorpus(w.Corpus, cfg)
	loader := fixtures.NewDir(corpus)
	opts := regen.Options{
		BackupSuffix: resolveBackupSuffix(w.BackupSuffix, cfg),
		RequireClean: cfg.Git.RequireClean || w.RequireClean,
	}

	regenOnce := func() {
		runID := uuid.NewString()
		start := time.Now()
		res, err := regen.RegenerateFile(w.File, loader, opts)
		if err != nil {
			slog.Error("Regeneration failed",
				logfields.RunID(runID),
				logfields.File(w.File),
				logfields.Error(err))
			return
		}
		if !res.Changed {
			slog.Info("Document already up to date",
				logfields.RunID(runID),
				logfields.File(res.Path))
			return
		}
		slog.Info("Document regenerated",
			logfields.RunID(runID),
			logfields.File(res.Path),
			logfields.Regions(res.Regions),
			logfields.Fixtures(res.Fixtures),
			logfields.DurationMS(time.Since(start).Seconds()*1000))
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	regenOnce()

	watcher, err := watch.NewWatcher(corpus, w.Debounce, regenOnce)
	if err != nil {
		return err
	}
	if err := watcher.Start(sigctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-sigctx.Done()
	slog.Info("Shutting down watcher")
	return nil
}
