package regen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// DefaultBackupSuffix is appended to the original path for the backup
// rename when Options.BackupSuffix is empty.
const DefaultBackupSuffix = ".old"

// Options control how RegenerateFile treats the target file.
type Options struct {
	BackupSuffix string

	// RequireClean refuses to rewrite a file inside a git work tree with
	// uncommitted changes, so the backup never replaces the only copy of
	// unsaved work.
	RequireClean bool
}

// Result describes a completed file regeneration.
type Result struct {
	Summary

	Path   string
	Backup string

	// Changed is false when the regenerated document is byte-identical to
	// what was already on disk.
	Changed bool
}

// RegenerateFile rewrites path in place: the original content is renamed
// aside to path plus the backup suffix, then the regenerated document is
// written to path with the original file's permissions. Nothing on disk is
// touched until the whole document has been rewritten in memory, so a scan
// failure leaves the file exactly as it was.
func RegenerateFile(path string, loader Loader, opts Options) (Result, error) {
	suffix := opts.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}

	if opts.RequireClean {
		if err := ensureCleanWorktree(path); err != nil {
			return Result{}, err
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	out, summary, err := Rewrite(string(data), loader)
	if err != nil {
		return Result{}, fmt.Errorf("rewrite %s: %w", path, err)
	}

	backup := path + suffix
	if err := os.Rename(path, backup); err != nil {
		return Result{}, fmt.Errorf("back up %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	return Result{
		Summary: summary,
		Path:    path,
		Backup:  backup,
		Changed: out != string(data),
	}, nil
}

// Check regenerates path in memory and reports whether the on-disk content
// is stale. The file is never modified.
func Check(path string, loader Loader) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	out, _, err := Rewrite(string(data), loader)
	if err != nil {
		return false, fmt.Errorf("rewrite %s: %w", path, err)
	}
	return out != string(data), nil
}

// ensureCleanWorktree fails with ErrDirtyWorktree when path sits inside a
// git repository whose work tree has uncommitted changes. A path outside
// any repository passes.
func ensureCleanWorktree(path string) error {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open git repository for %s: %w", path, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get git worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("get git status: %w", err)
	}
	if !status.IsClean() {
		return fmt.Errorf("%w: commit or stash changes before regenerating %s", ErrDirtyWorktree, path)
	}
	return nil
}
