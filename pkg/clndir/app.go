// Package clndir wires scanning, confirmation, and deletion into one
// cleaning run over a configured directory.
package clndir

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/harunnryd/clndir/pkg/confirm"
	"github.com/harunnryd/clndir/pkg/logging"
	"github.com/harunnryd/clndir/pkg/purge"
	"github.com/harunnryd/clndir/pkg/scan"
)

// App runs the cleaner against one directory.
type App struct {
	cfg    Config
	fs     afero.Fs
	clock  scan.Clock
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// AppOptions configures an App. Zero fields fall back to the real
// filesystem, the wall clock, and the standard streams.
type AppOptions struct {
	Config Config
	Fs     afero.Fs
	Clock  scan.Clock
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func NewApp(opts AppOptions) *App {
	a := &App{
		cfg:    opts.Config,
		fs:     opts.Fs,
		clock:  opts.Clock,
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logger: opts.Logger,
	}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.stdin == nil {
		a.stdin = os.Stdin
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.logger = logging.NewComponentLogger(a.logger, "cleaner")
	return a
}

// Run performs one cleaning pass: list the directory, filter by age
// and skip patterns, gate on confirmation unless nowarn is set, then
// delete and report the count. Per-file deletion failures are reported
// and tolerated; they never fail the run.
func (a *App) Run() error {
	now := a.clock()

	files, err := scan.List(a.fs, a.cfg.Dir)
	if err != nil {
		fmt.Fprintf(a.stderr, "\nDirectory name : %s\n", a.cfg.Dir)
		return err
	}
	a.logger.Info("scan_complete", "dir", a.cfg.Dir, "files", len(files))

	eligible := scan.Filter(files, a.cfg.Age, a.cfg.Skip, now)
	a.logger.Info("filter_complete",
		"eligible", len(eligible),
		"age_days", a.cfg.Age,
		"skip_patterns", len(a.cfg.Skip),
	)

	if !a.cfg.NoWarn {
		gate := confirm.Gate{In: a.stdin, Out: a.stdout}
		if !gate.Confirm(eligible) {
			a.logger.Info("run_canceled")
			return nil
		}
	}

	deleted, err := purge.Files(a.fs, a.cfg.Dir, eligible, a.stderr)
	if err != nil {
		a.logger.Warn("purge_incomplete", "error", err)
	}
	fmt.Fprintf(a.stdout, "%d File(s) deleted\n", deleted)
	a.logger.Info("run_complete", "deleted", deleted)
	return nil
}
