// Package cli declares the command line surface of clndir.
package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dimiro1/banner"
	"github.com/spf13/pflag"
)

const (
	// Name is the command name shown in usage and the banner.
	Name = "clndir"
	// Version is the released tool version.
	Version = "1.0"
)

const about = `Cleans old files from a directory. It defaults to the value of the ENV var 'Downloads'.
Program will return an error if no directory is specified and the ENV var is missing.
Program will ask user to confirm list of files unless --nowarn is specified.
Only files older than --age days will be deleted.
Files matching the pattern specified by --skip will not be deleted. This parameter can be repeated.`

// NewFlagSet declares clndir's flags with their defaults.
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	flags.StringP("dir", "d", "", "directory to clean")
	flags.Uint64P("age", "a", 600, "minimum age in days for a file to be deleted")
	flags.BoolP("nowarn", "n", false, "delete without asking for confirmation")
	flags.StringArrayP("skip", "s", nil, "keep files whose name contains this pattern (repeatable)")
	flags.String("log-level", "warn", "log verbosity (debug, info, warn, error)")
	flags.BoolP("version", "V", false, "print version and exit")
	flags.BoolP("help", "h", false, "print this help and exit")
	return flags
}

// Parse reads args into a fresh flag set. done reports that the run
// should stop successfully because help or version was requested.
// Parse errors are returned without printing; the caller reports them.
func Parse(args []string, stdout io.Writer) (flags *pflag.FlagSet, done bool, err error) {
	flags = NewFlagSet()
	if err := flags.Parse(args); err != nil {
		return flags, false, err
	}
	if flags.NArg() > 0 {
		return flags, false, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}
	if help, _ := flags.GetBool("help"); help {
		Usage(stdout, flags)
		return flags, true, nil
	}
	if version, _ := flags.GetBool("version"); version {
		PrintBanner(stdout)
		return flags, true, nil
	}
	return flags, false, nil
}

// Usage writes the about text and the flag summary.
func Usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "%s %s\n%s\n\nUsage:\n  %s [flags]\n\nFlags:\n%s",
		Name, Version, about, Name, flags.FlagUsages())
}

// PrintBanner writes the startup banner with the tool version.
func PrintBanner(out io.Writer) {
	tpl := "{{ .Title \"CLNDIR\" \"\" 0 }}\nVersion: " + Version + "\n"
	banner.Init(out, true, true, bytes.NewBufferString(tpl))
}
