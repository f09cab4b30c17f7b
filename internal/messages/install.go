package messages

// Install messages.
const (
	// InstallPackageRootRequired indicates the package root is required for install.
	InstallPackageRootRequired = "package root is required"
	// InstallTargetRootRequired indicates the target root is required for install.
	InstallTargetRootRequired = "target root is required"
	// InstallSystemRequired indicates system is required for install.
	InstallSystemRequired = "install system is required"
	InstallRootNotAbsFmt  = "%s %q must be an absolute path"

	// InstallCopiedFmt is printed once per copied file.
	InstallCopiedFmt  = "  %s %s\n"
	InstallCheckGlyph = "✓"
	InstallSkippedFmt = "  - skipped %s (not found)\n"
	// InstallSuccessSummary is printed after at least one file was copied.
	InstallSuccessSummary = "Cursor rules installed. Cursor will apply them automatically."
	// InstallNoFilesFound is the error reported when no manifest source exists.
	InstallNoFilesFound = "No rule files found. Reinstall @avisek_yorkie/cursor-rules."

	InstallEntryFailedFmt = "failed to %s %s: %v"
	InstallOpStat         = "stat"
	InstallOpMkdir        = "create directory for"
	InstallOpRead         = "read"
	InstallOpWrite        = "write"
	InstallSourceIsDir    = "source is a directory"
)

// Manifest messages.
const (
	ManifestNameRequired        = "manifest name is required"
	ManifestEntrySrcRequiredFmt = "manifest %s: entry %d has an empty source path"
	ManifestEntryDstRequiredFmt = "manifest %s: entry %d has an empty destination path"
	ManifestEntryAbsPathFmt     = "manifest %s: entry %d path %q must be relative"
	ManifestEntryEscapesFmt     = "manifest %s: entry %d path %q escapes its root"
	ManifestDuplicateDestFmt    = "manifest %s: duplicate destination %q"
	ManifestDuplicateNameFmt    = "catalog: duplicate variant %q"
	ManifestDecodeFmt           = "decode manifest catalog: %w"
	ManifestCatalogEmpty        = "manifest catalog has no variants"
	ManifestDefaultMissingFmt   = "catalog default variant %q is not defined"
	ManifestUnknownVariantFmt   = "unknown variant %q (available: %s)"
)

// Filesystem helper messages.
const (
	FsutilResolveLinkFmt = "resolve symlink %s: %w"
	FsutilCreateTempFmt  = "create temp file for %s: %w"
	FsutilWriteTempFmt   = "write temp file for %s: %w"
	FsutilSyncTempFmt    = "sync temp file for %s: %w"
	FsutilCloseTempFmt   = "close temp file for %s: %w"
	FsutilChmodTempFmt   = "chmod temp file for %s: %w"
	FsutilRenameTempFmt  = "rename temp file to %s: %w"
)
