package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/harunnryd/clndir/pkg/cli"
	"github.com/harunnryd/clndir/pkg/clndir"
	"github.com/harunnryd/clndir/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run carries the whole program so tests can drive it with fake
// streams and inspect the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, done, err := cli.Parse(args, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cli.Name)
		return 2
	}
	if done {
		return 0
	}

	cfg, err := clndir.LoadConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogLevel, stderr).With("run_id", uuid.NewString())
	app := clndir.NewApp(clndir.AppOptions{
		Config: cfg,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintf(stdout, "Error : %v\n\n", err)
		return 1
	}
	return 0
}
