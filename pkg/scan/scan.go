// Package scan lists a directory and selects the files old enough to delete.
package scan

import (
	"time"

	"github.com/spf13/afero"

	"github.com/harunnryd/clndir/pkg/errorsx"
)

// Clock supplies the current time. Tests substitute a fixed instant.
type Clock func() time.Time

// Candidate is a regular file considered for deletion.
type Candidate struct {
	Name    string
	ModTime time.Time
}

// List reads dir without recursing and returns its regular files in
// name order. Subdirectories and symlinks are skipped. A failure to
// read the directory or stat an entry fails the whole scan.
func List(fsys afero.Fs, dir string) ([]Candidate, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonListFailed)
	}
	candidates := make([]Candidate, 0, len(infos))
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:    info.Name(),
			ModTime: info.ModTime(),
		})
	}
	return candidates, nil
}
