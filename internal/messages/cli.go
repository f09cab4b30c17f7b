package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "cursor-rules-init"
	// RootShort is the short description for the root command.
	RootShort = "Install Cursor rule files into the current project"
	// RootLong is the long description for the root command.
	RootLong = "Copies .cursorrules and the bundled .mdc rule files from this package into the\n" +
		"current working directory. Run it from your project root.\n\n" +
		"The rule files are read from the directory above the one holding this executable\n" +
		"(the package's bin/ directory). A binary installed with `go install` lives in\n" +
		"$GOPATH/bin without the rule files, so pass --package-root in that layout."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagVariant     = "Install variant to use (see --list)"
	FlagTarget      = "Directory to install into (defaults to the working directory)"
	FlagPackageRoot = "Directory containing the bundled rule files (defaults to the parent of the executable's directory; required for binaries installed with go install)"
	FlagVerbose     = "Report manifest entries that were skipped because the source is missing"
	FlagList        = "List the available install variants and exit"
	FlagNoColor     = "Disable colored output"

	// ListVariantFmt formats a variant header in --list output.
	ListVariantFmt       = "%s%s - %s\n"
	ListDefaultMarker    = " (default)"
	ListEntryFmt         = "    %s -> %s\n"
	ResolveExecutableFmt = "resolve executable path: %w"
	ResolvePathFmt       = "resolve %s: %w"
	ResolveWorkingDirFmt = "resolve working directory: %w"
	PathFlagEmptyFmt     = "%s must not be empty"
	FlagNameTarget       = "--target"
	FlagNamePackageRoot  = "--package-root"
)
