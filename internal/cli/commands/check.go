package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/typolint/typolint/internal/cli/config"
	"github.com/typolint/typolint/internal/cli/output"
	"github.com/typolint/typolint/internal/meta"
	"github.com/typolint/typolint/internal/runner"
	"github.com/typolint/typolint/internal/walker"
	"github.com/typolint/typolint/pkg/check"
	_ "github.com/typolint/typolint/pkg/check/rules" // register rules
)

// watchDebounce coalesces filesystem event bursts into one rescan.
const watchDebounce = 300 * time.Millisecond

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Disable []string // Rule names to disable
	Jobs    int      // Concurrent file scans
	Props   string   // Properties file override
	Format  string   // Output format: text, markdown, json
	Summary bool     // Print a per-rule summary table
	Watch   bool     // Rescan on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check files for typographic convention violations",
		Long: `Scan source files for typographic convention violations.

Directory arguments are walked recursively; file arguments are scanned
directly. With no arguments the current directory is scanned.

Per-path exceptions and binary markers come from the properties file
(default .typoprops.yaml at the project root).

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the current tree
  typolint check

  # Check specific paths
  typolint check src/ include/version.h

  # Disable rules for this run
  typolint check --disable long-line,svn-keyword

  # Machine-readable output with a summary
  typolint check --format json --summary

  # Rescan whenever files change
  typolint check --watch src/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule names to disable")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Concurrent file scans (0 = one per CPU)")
	cmd.Flags().StringVar(&opts.Props, "props", "", "Properties file (default: .typoprops.yaml at the project root)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print a per-rule summary table")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and rescan")

	return cmd
}

// checkRun bundles everything one scan pass needs, so watch mode can repeat
// passes cheaply.
type checkRun struct {
	walker *walker.Walker
	runner *runner.Runner
	roots  []string
}

// checkResult is the outcome of one scan pass.
type checkResult struct {
	reports  []*check.FileReport
	walkErrs []walker.WalkError
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	run, err := newCheckRun(cfg, cmdCtx, args, opts)
	if err != nil {
		return err
	}

	res, err := run.scan(cmd.Context())
	if err != nil {
		return err
	}
	hasFindings := renderCheckResults(r, res, opts.Summary)

	if opts.Watch {
		return watchAndRescan(cmd.Context(), r, run, opts)
	}

	if hasFindings {
		return ErrViolationsFound
	}
	return nil
}

func newCheckRun(cfg *config.Config, cmdCtx *CommandContext, args []string, opts *CheckOptions) (*checkRun, error) {
	ccfg, err := buildCheckConfig(cfg, opts)
	if err != nil {
		return nil, err
	}

	propsPath := cfg.PropsFile
	if opts.Props != "" {
		propsPath = opts.Props
	}
	source, err := meta.Load(propsPath)
	if err != nil {
		return nil, err
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	pruneDirs := append([]string{}, walker.DefaultPruneDirs...)
	pruneDirs = append(pruneDirs, cfg.PruneDirs...)

	return &checkRun{
		walker: &walker.Walker{PruneDirs: pruneDirs, Pruner: source},
		runner: &runner.Runner{Cfg: ccfg, Source: source, Jobs: jobs, Logger: cmdCtx.Logger},
		roots:  roots,
	}, nil
}

// buildCheckConfig merges project config and CLI flags into the scan
// configuration. Unknown rule names are rejected up front.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions) (*check.Config, error) {
	ccfg := check.NewConfig()

	disable := append([]string{}, cfg.Disable...)
	disable = append(disable, opts.Disable...)
	for _, name := range disable {
		if !check.ValidRuleName(name) {
			return nil, fmt.Errorf("unknown rule name %q", name)
		}
		ccfg.Disable(check.RuleName(name))
	}

	if len(cfg.Header.Markers) > 0 {
		ccfg.SetHeaderMarkers(cfg.Header.Markers)
	}

	return ccfg, nil
}

func (cr *checkRun) scan(ctx context.Context) (*checkResult, error) {
	paths, walkErrs := cr.walker.Walk(cr.roots)
	reports, err := cr.runner.Run(ctx, paths)
	if err != nil {
		return nil, err
	}
	return &checkResult{reports: reports, walkErrs: walkErrs}, nil
}

// renderCheckResults flushes the buffered reports in input order and returns
// whether any violations were found.
func renderCheckResults(r *output.Renderer, res *checkResult, summary bool) bool {
	agg := aggregate(res)

	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(buildCheckOutput(res, agg))
		return agg.Violations > 0
	}

	for _, we := range res.walkErrs {
		r.Error(we.Error())
	}
	for _, rep := range res.reports {
		if rep.Err != nil {
			r.Error(fmt.Sprintf("%s: %v", rep.Path, rep.Err))
			continue
		}
		for _, line := range rep.Lines {
			r.Println(line)
		}
	}

	if summary {
		renderSummaryTable(r, agg)
	}

	return agg.Violations > 0
}

func aggregate(res *checkResult) output.CheckSummary {
	agg := output.CheckSummary{
		ByRule:        make(map[string]int),
		TraversalErrs: len(res.walkErrs),
	}
	for _, rep := range res.reports {
		switch {
		case rep.Err != nil:
			// Reported per file; not part of the scan totals.
		case rep.Skipped:
			agg.FilesSkipped++
		default:
			agg.FilesScanned++
			if rep.HasFindings() {
				agg.FilesFlagged++
			}
			agg.Violations += rep.Total()
			for rule, n := range rep.Reported {
				if n > 0 {
					agg.ByRule[string(rule)] += n
				}
			}
		}
	}
	return agg
}

func buildCheckOutput(res *checkResult, agg output.CheckSummary) output.CheckOutput {
	out := output.CheckOutput{Summary: agg}
	for _, rep := range res.reports {
		fr := output.CheckFileResult{Path: rep.Path, Skipped: rep.Skipped}
		if rep.Err != nil {
			fr.Error = rep.Err.Error()
		}
		if rep.HasFindings() {
			fr.Messages = rep.Lines
		}
		if fr.Error == "" && !fr.Skipped && fr.Messages == nil {
			continue
		}
		out.Files = append(out.Files, fr)
	}
	return out
}

// renderSummaryTable prints the per-rule totals in canonical rule order.
func renderSummaryTable(r *output.Renderer, agg output.CheckSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Violations"})

	for _, name := range check.AllRuleNames {
		if n := agg.ByRule[string(name)]; n > 0 {
			t.AppendRow(table.Row{string(name), n})
		}
	}
	t.AppendFooter(table.Row{"total", agg.Violations})
	t.Render()

	r.Printf("%d violations in %d of %d files (%d skipped)\n",
		agg.Violations, agg.FilesFlagged, agg.FilesScanned, agg.FilesSkipped)
}

// watchAndRescan blocks, rescanning the roots whenever files beneath them
// change. It returns when the context is canceled.
func watchAndRescan(ctx context.Context, r *output.Renderer, run *checkRun, opts *CheckOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range run.roots {
		if err := watchTree(watcher, root, run.walker); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	r.Warning("watching for changes, press Ctrl+C to stop")

	var debounce *time.Timer
	rescan := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories must be picked up for future events.
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = watchTree(watcher, event.Name, run.walker)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case rescan <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Error(fmt.Sprintf("watch error: %v", err))
		case <-rescan:
			res, err := run.scan(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			renderCheckResults(r, res, opts.Summary)
		}
	}
}

// watchTree registers root and its non-pruned subdirectories with the
// watcher. File roots are watched via their parent directory.
func watchTree(watcher *fsnotify.Watcher, root string, w *walker.Walker) error {
	fi, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}

	pruned := make(map[string]bool)
	dirs := w.PruneDirs
	if dirs == nil {
		dirs = walker.DefaultPruneDirs
	}
	for _, d := range dirs {
		pruned[d] = true
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && pruned[info.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
