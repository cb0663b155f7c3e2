package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/seam-lang/seam/internal/cli"
)

// Watch compiles paths once and then recompiles every file whose content
// changes, until ctx is done. Each batch of results is passed to report.
//
// Parent directories are watched rather than the files themselves, since
// many editors save by writing a new file and renaming it over the old one.
func (c *Compiler) Watch(ctx context.Context, paths []string, report func([]Result)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		c.logger.Debug("watching %s", dir)
	}

	snap, err := TakeSnapshot(paths)
	if err != nil {
		return err
	}
	// Compile fails only once ctx is cancelled.
	results, err := c.Compile(ctx, paths)
	if err != nil {
		return nil
	}
	report(results)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			curr, err := TakeSnapshot(paths)
			if err != nil {
				c.logger.Warn("watch: %v", err)
				continue
			}
			changed := snap.Changed(curr)
			snap = curr
			if len(changed) == 0 {
				continue
			}

			c.logger.Info("%d file(s) changed, recompiling", len(changed))
			results, err := c.Compile(ctx, changed)
			if err != nil {
				return nil
			}
			report(results)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("watch: %v", err)
		}
	}
}

// Watch watches paths with a fresh compiler.
func Watch(ctx context.Context, cfg *cli.Config, logger *cli.Logger, paths []string, report func([]Result)) error {
	return NewCompiler(cfg, logger).Watch(ctx, paths, report)
}
