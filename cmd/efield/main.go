// Command efield opens the electric field visualizer, or probes the field
// headlessly.
//
//	efield                       open the window with efield.yaml / defaults
//	efield --script demo.yaml    replay a scripted session
//	efield probe --x 400 --y 400 print the field at a point
//	efield config                print the effective configuration
//
// Settings come from flags, EFIELD_* environment variables and an optional
// efield.yaml (searched in the working directory, then ~/.config/efield),
// in that order of precedence.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	c := newCLI(stderr)
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if c.log != nil {
			c.log.Error("command failed", zap.Error(err))
			_ = c.log.Sync()
		} else {
			_, _ = fmt.Fprintln(stderr, err)
		}
		return 1
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
	return 0
}
