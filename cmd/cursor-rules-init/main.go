package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/avisek-yorkie/cursor-rules/internal/messages"
	"github.com/avisek-yorkie/cursor-rules/internal/terminal"
)

var executeFunc = execute
var isTerminalWriter = terminal.IsTerminalWriter

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits 1 on any error, including a run that
// copied nothing.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	errColor := color.New(color.FgRed)
	if isTerminalWriter(stderr) && !hasNoColorFlag(args) {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	_, _ = errColor.Fprintln(stderr, err)
	exit(1)
}

// hasNoColorFlag reports whether --no-color was passed before any "--" terminator.
func hasNoColorFlag(args []string) bool {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimSpace(arg)
		if trimmed == "--" {
			break
		}
		if trimmed == flagNoColor {
			return true
		}
		if value, ok := strings.CutPrefix(trimmed, flagNoColor+"="); ok {
			parsed, err := strconv.ParseBool(value)
			if err == nil && parsed {
				return true
			}
		}
	}
	return false
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
