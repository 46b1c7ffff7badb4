// Package confirm implements the interactive deletion gate.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harunnryd/clndir/pkg/scan"
)

// Keyword is the literal a user must type to approve deletion.
const Keyword = "DEL"

const dateFormat = "2006-01-02"

// Gate asks the user to approve a list of files before deletion.
type Gate struct {
	In  io.Reader
	Out io.Writer
}

// Confirm shows the files and waits for one line of input. Only the
// keyword, ignoring surrounding whitespace, approves the deletion.
// Anything else, including end of input, cancels.
func (g Gate) Confirm(files []scan.Candidate) bool {
	g.display(files)

	fmt.Fprintf(g.Out, "\nType %s to delete these files : ", color.RedString(Keyword))
	line, _ := bufio.NewReader(g.In).ReadString('\n')
	if strings.TrimSpace(line) == Keyword {
		return true
	}
	fmt.Fprintln(g.Out, "Deletion canceled by user")
	return false
}

func (g Gate) display(files []scan.Candidate) {
	for _, f := range files {
		fmt.Fprintf(g.Out, "Last Modified %s - %s \n",
			color.GreenString(f.ModTime.UTC().Format(dateFormat)),
			color.YellowString(f.Name),
		)
	}
}
