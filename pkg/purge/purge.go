// Package purge deletes approved files, tolerating per-file failures.
package purge

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/harunnryd/clndir/pkg/errorsx"
	"github.com/harunnryd/clndir/pkg/scan"
)

// Files removes the given files from dir and returns how many were
// deleted. A file that cannot be removed is reported on errW and
// skipped; the failures also come back joined for the caller's log.
func Files(fsys afero.Fs, dir string, files []scan.Candidate, errW io.Writer) (int, error) {
	var deleted int
	var errs error
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := fsys.Remove(path); err != nil {
			fmt.Fprintf(errW, "Error deleting file %s: %v\n", color.YellowString(f.Name), err)
			errs = errors.Join(errs, err)
			continue
		}
		deleted++
	}
	return deleted, errorsx.Wrap(errs, errorsx.ReasonDeleteFailed)
}
