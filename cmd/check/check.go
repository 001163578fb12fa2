// Package check implements the check command, which loads bibliography files
// and reports entries whose fields deviate from others of the same type.
package check

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kaan0029/jabref/internal/conf"
	"github.com/Kaan0029/jabref/internal/consistency"
	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/library"
	"github.com/Kaan0029/jabref/internal/logger"
	"github.com/Kaan0029/jabref/internal/notification"
	"github.com/Kaan0029/jabref/internal/observability"
	"github.com/Kaan0029/jabref/internal/observability/metrics"
	"github.com/Kaan0029/jabref/internal/report"
	"github.com/Kaan0029/jabref/pkg/spinner"
)

// ErrFindings is returned when inconsistencies were found and the run was
// asked to fail on findings.
var ErrFindings = errors.NewStd("field inconsistencies found")

// Command creates the check command.
func Command() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report entries whose fields deviate from others of the same type",
		Long: `Check groups the entries of one or more bibliography files by entry type
and reports, for every type, the fields used by only some of its entries
together with the entries that deviate from the fields they all share.

Supported inputs are BibTeX (.bib) and record files (.yaml, .yml, .json).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := conf.GetSettings()
			if settings == nil {
				return errors.Newf("configuration not loaded").
					Component("cli.check").
					Category(errors.CategoryConfiguration).
					Build()
			}
			settings.Check.Progress = progressEnabled(settings.Check.Progress,
				cmd.Flags().Changed("no-progress"), noProgress, cmd.ErrOrStderr())

			r := &runner{
				fs:       afero.NewOsFs(),
				stdout:   cmd.OutOrStdout(),
				stderr:   cmd.ErrOrStderr(),
				settings: settings,
			}
			return r.run(cmd.Context(), args)
		},
	}

	setupFlags(cmd, &noProgress)

	return cmd
}

// setupFlags defines the check flags and binds them to their config keys
func setupFlags(cmd *cobra.Command, noProgress *bool) {
	flags := cmd.Flags()
	flags.StringP("format", "f", conf.DefaultFormat, "Report format: txt, csv or json")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.Bool("fail-on-findings", false, "Exit with status 2 when inconsistencies are found")
	flags.String("metrics-textfile", "", "Write Prometheus metrics to this .prom file")
	flags.BoolVar(noProgress, "no-progress", false, "Do not draw a progress spinner")

	for key, flag := range map[string]string{
		"check.format":         "format",
		"check.output":         "output",
		"check.failonfindings": "fail-on-findings",
		"metrics.textfile":     "metrics-textfile",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			GetLogger().Warn("failed to bind flag", logger.String("flag", flag), logger.Error(err))
		}
	}
}

// progressEnabled decides whether to draw the spinner. An explicit
// --no-progress wins; otherwise the configured value applies only when
// stderr is a terminal.
func progressEnabled(configured, flagSet, noProgress bool, stderr io.Writer) bool {
	if flagSet {
		return !noProgress
	}
	return configured && spinner.IsTerminal(stderr)
}

// runner holds the dependencies of one check run
type runner struct {
	fs       afero.Fs
	stdout   io.Writer
	stderr   io.Writer
	settings *conf.Settings
}

func (r *runner) run(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	ctx = logger.WithTraceID(ctx, runID)
	log := GetLogger().WithContext(ctx)
	s := r.settings

	format, err := report.ParseFormat(s.Check.Format)
	if err != nil {
		return err
	}

	var m *observability.Metrics
	var rec metrics.Recorder = metrics.NopRecorder{}
	if s.Metrics.Textfile != "" {
		if m, err = observability.NewMetrics(); err != nil {
			return err
		}
		rec = m.Check
	}

	notifier, err := notification.New(s.Notify)
	if err != nil {
		return err
	}

	log.Info("check started", logger.Int("files", len(paths)), logger.String("format", string(format)))
	start := time.Now()

	loader := library.NewLoader(r.fs, library.WithDedupe(s.Check.Dedupe))
	entries, err := loader.LoadAll(paths)
	recordOp(rec, metrics.OpLoad, start, err)
	if err != nil {
		r.exportMetricsOnFailure(log, m)
		return err
	}

	var progress consistency.ProgressFunc
	var sp *spinner.Spinner
	if s.Check.Progress {
		sp = spinner.NewSpinner(r.stderr)
		progress = sp.Progress
	}

	checkStart := time.Now()
	result := consistency.Check(entries, progress)
	checkElapsed := time.Since(checkStart)
	if sp != nil {
		sp.Cleanup()
	}
	recordOp(rec, metrics.OpCheck, checkStart, nil)
	if m != nil {
		m.Check.RecordCheck(entries, result, checkElapsed)
	}

	renderStart := time.Now()
	err = r.writeReport(format, s.Check.Output, result)
	recordOp(rec, metrics.OpExport, renderStart, err)
	if err != nil {
		r.exportMetricsOnFailure(log, m)
		return err
	}

	log.Info("check finished",
		logger.Int("entries", len(entries)),
		logger.Int("inconsistent_entry_types", len(result.EntryTypeToResult)),
		logger.Int("deviating_entries", result.DeviatingEntries()),
		logger.Duration("elapsed", time.Since(start)))

	summary := notification.NewSummary(runID, paths, len(entries), result, time.Since(start))
	if err := notifier.Notify(ctx, summary); err != nil {
		// A failed notification does not invalidate the report
		log.Warn("notification failed", logger.Error(err))
	}

	if err := r.exportMetrics(m); err != nil {
		return err
	}

	if s.Check.FailOnFindings && !result.IsEmpty() {
		return ErrFindings
	}
	return nil
}

// writeReport renders result to stdout or to path. A file is only created
// once rendering succeeded.
func (r *runner) writeReport(format report.Format, path string, result consistency.Result) error {
	if path == "" {
		return report.Write(r.stdout, format, result)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, result); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.FileError("cli.check", fmt.Errorf("failed to create report directory: %w", err), path, 0)
		}
	}
	if err := afero.WriteFile(r.fs, path, buf.Bytes(), 0o644); err != nil {
		return errors.FileError("cli.check", fmt.Errorf("failed to write report: %w", err), path, int64(buf.Len()))
	}

	GetLogger().Info("report written", logger.String("path", path), logger.Int("bytes", buf.Len()))
	return nil
}

// exportMetrics writes the textfile when metrics are enabled
func (r *runner) exportMetrics(m *observability.Metrics) error {
	if m == nil {
		return nil
	}
	return m.WriteTextfile(r.settings.Metrics.Textfile)
}

// exportMetricsOnFailure writes the textfile after a failed run. The run's
// own error is what gets returned, so an export failure is only logged.
func (r *runner) exportMetricsOnFailure(log logger.Logger, m *observability.Metrics) {
	if err := r.exportMetrics(m); err != nil {
		log.Warn("metrics export failed", logger.Error(err))
	}
}

// recordOp records status, duration and error category of one operation
func recordOp(rec metrics.Recorder, operation string, start time.Time, err error) {
	rec.RecordDuration(operation, time.Since(start).Seconds())
	if err == nil {
		rec.RecordOperation(operation, metrics.StatusSuccess)
		return
	}
	rec.RecordOperation(operation, metrics.StatusError)
	rec.RecordError(operation, errorType(err))
}

func errorType(err error) string {
	var ee *errors.EnhancedError
	if errors.As(err, &ee) {
		return ee.GetCategory()
	}
	return string(errors.CategoryGeneric)
}
