// Package runner executes file scans concurrently. Each file is scanned in
// isolation, so reports can be produced in parallel and flushed in the
// original argument order.
package runner

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/typolint/typolint/pkg/check"
)

// Runner fans file scans out over a bounded worker pool.
type Runner struct {
	// Cfg is the resolved check configuration shared by all scans.
	Cfg *check.Config
	// Source supplies per-path metadata. Must not be nil; use
	// check.NullSource{} when no properties file is loaded.
	Source check.ExceptionSource
	// Jobs bounds concurrent scans. Zero or negative means NumCPU.
	Jobs int
	// Logger receives per-file debug events. May be nil.
	Logger *slog.Logger
}

// Run scans every path and returns one report per path, in input order.
// Unreadable files yield a report carrying the read error; fully exempt
// files yield a skipped report. Run only fails when the context is
// canceled.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*check.FileReport, error) {
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	eng := check.NewEngine(r.Cfg)
	reports := make([]*check.FileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = r.scanOne(eng, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *Runner) scanOne(eng *check.Engine, path string) *check.FileReport {
	exc, skip := check.Resolve(r.Cfg, path, r.Source)
	if skip {
		if r.Logger != nil {
			r.Logger.Debug("skipping exempt file", "path", path)
		}
		return &check.FileReport{Path: path, Skipped: true}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return &check.FileReport{Path: path, Err: err}
	}

	return eng.Scan(path, content, exc)
}
