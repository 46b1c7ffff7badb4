package purge

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/harunnryd/clndir/pkg/errorsx"
	"github.com/harunnryd/clndir/pkg/scan"
)

func TestFilesDeletesEverything(t *testing.T) {
	fsys := afero.NewMemMapFs()
	names := []string{"a.iso", "b.zip", "c.tar"}
	files := make([]scan.Candidate, 0, len(names))
	for _, n := range names {
		if err := afero.WriteFile(fsys, "/downloads/"+n, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
		files = append(files, scan.Candidate{Name: n})
	}

	var errOut bytes.Buffer
	deleted, err := Files(fsys, "/downloads", files, &errOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
	for _, n := range names {
		if exists, _ := afero.Exists(fsys, "/downloads/"+n); exists {
			t.Fatalf("%s still present", n)
		}
	}
}

func TestFilesToleratesFailures(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/downloads/real.iso", []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	files := []scan.Candidate{
		{Name: "ghost.txt"},
		{Name: "real.iso"},
	}

	var errOut bytes.Buffer
	deleted, err := Files(fsys, "/downloads", files, &errOut)
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
	if !strings.Contains(errOut.String(), "Error deleting file ghost.txt:") {
		t.Fatalf("failure line missing: %q", errOut.String())
	}
	if !errorsx.HasReason(err, errorsx.ReasonDeleteFailed) {
		t.Fatalf("expected delete_failed reason, got %v", err)
	}
	if exists, _ := afero.Exists(fsys, "/downloads/real.iso"); exists {
		t.Fatalf("real.iso should be gone")
	}
}

func TestFilesEmptyList(t *testing.T) {
	var errOut bytes.Buffer
	deleted, err := Files(afero.NewMemMapFs(), "/downloads", nil, &errOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}
}
