package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avisek-yorkie/cursor-rules/internal/install"
	"github.com/avisek-yorkie/cursor-rules/internal/manifest"
	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

const flagNoColor = "--no-color"

var installFunc = install.Install
var loadCatalog = manifest.Load

type rootOptions struct {
	variant     string
	target      string
	packageRoot string
	verbose     bool
	list        bool
	noColor     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.Flags().StringVarP(&opts.variant, "variant", "r", "", messages.FlagVariant)
	cmd.Flags().StringVar(&opts.target, "target", "", messages.FlagTarget)
	cmd.Flags().StringVar(&opts.packageRoot, "package-root", "", messages.FlagPackageRoot)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, messages.FlagVerbose)
	cmd.Flags().BoolVar(&opts.list, "list", false, messages.FlagList)
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, messages.FlagNoColor)

	return cmd
}

// runInstall resolves the manifest and both roots, then runs the installer.
func runInstall(cmd *cobra.Command, opts rootOptions) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if opts.list {
		return printVariants(cmd.OutOrStdout(), catalog)
	}
	m := catalog.Default()
	if opts.variant != "" {
		m, err = catalog.Lookup(opts.variant)
		if err != nil {
			return err
		}
	}

	cwd, err := getwd()
	if err != nil {
		return fmt.Errorf(messages.ResolveWorkingDirFmt, err)
	}
	targetRoot, err := resolveTargetRoot(cmd, opts.target, cwd)
	if err != nil {
		return err
	}
	packageRoot, err := resolvePackageRoot(cmd, opts.packageRoot, cwd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, err = installFunc(m, install.Options{
		PackageRoot: packageRoot,
		TargetRoot:  targetRoot,
		System:      install.RealSystem{},
		Out:         out,
		Verbose:     opts.verbose,
		Color:       !opts.noColor && isTerminalWriter(out),
	})
	return err
}

// printVariants writes every catalog variant and its entries.
func printVariants(out io.Writer, catalog manifest.Catalog) error {
	for _, variant := range catalog.Variants() {
		marker := ""
		if variant.Name == catalog.DefaultName() {
			marker = messages.ListDefaultMarker
		}
		if _, err := fmt.Fprintf(out, messages.ListVariantFmt, variant.Name, marker, variant.Description); err != nil {
			return err
		}
		for _, entry := range variant.Entries {
			if _, err := fmt.Fprintf(out, messages.ListEntryFmt, entry.Src, entry.Dest); err != nil {
				return err
			}
		}
	}
	return nil
}
