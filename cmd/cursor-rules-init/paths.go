package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

var (
	getwd        = os.Getwd
	executable   = os.Executable
	evalSymlinks = filepath.EvalSymlinks
)

// resolveTargetRoot returns the install destination: the --target flag when
// set, otherwise the working directory.
func resolveTargetRoot(cmd *cobra.Command, flagValue string, cwd string) (string, error) {
	if !cmd.Flags().Changed("target") {
		return filepath.Clean(cwd), nil
	}
	return expandPath(messages.FlagNameTarget, flagValue, cwd)
}

// resolvePackageRoot returns the directory holding the bundled rule files:
// the --package-root flag when set, otherwise the parent of the directory
// containing the running executable (the package's bin/ directory).
func resolvePackageRoot(cmd *cobra.Command, flagValue string, cwd string) (string, error) {
	if cmd.Flags().Changed("package-root") {
		return expandPath(messages.FlagNamePackageRoot, flagValue, cwd)
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf(messages.ResolveExecutableFmt, err)
	}
	resolved, err := evalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveExecutableFmt, err)
	}
	return filepath.Dir(filepath.Dir(resolved)), nil
}

// expandPath expands a leading ~ and makes value absolute relative to cwd.
func expandPath(flagName string, value string, cwd string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf(messages.PathFlagEmptyFmt, flagName)
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf(messages.ResolvePathFmt, flagName, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(cwd, expanded)
	}
	return filepath.Clean(expanded), nil
}
