package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/avisek-yorkie/cursor-rules/internal/manifest"
	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

// Options controls installer behavior.
type Options struct {
	// PackageRoot is the absolute directory holding the manifest sources.
	PackageRoot string
	// TargetRoot is the absolute directory the files are installed into.
	TargetRoot string
	System     System
	// Out receives progress lines and the success summary. Nil discards them.
	Out     io.Writer
	Verbose bool
	Color   bool
}

// Result lists what a run did, in manifest order.
type Result struct {
	// Copied holds the destination paths (as written in the manifest) that were installed.
	Copied []string
	// Skipped holds the source paths that did not exist in the package root.
	Skipped []string
}

type installer struct {
	packageRoot string
	targetRoot  string
	sys         System
	out         io.Writer
	verbose     bool
	check       *color.Color
	faint       *color.Color
}

// Install copies every manifest entry whose source exists from the package
// root into the target root, creating destination directories as needed and
// overwriting existing files. Missing sources are skipped. The first I/O
// failure stops the run and is returned as an *EntryError. When nothing was
// copied the error is a *NoFilesFoundError.
func Install(m manifest.Manifest, opts Options) (Result, error) {
	inst, err := newInstaller(opts)
	if err != nil {
		return Result{}, err
	}
	var result Result
	for _, entry := range m.Entries {
		copied, err := inst.installEntry(entry)
		if err != nil {
			return result, err
		}
		if !copied {
			result.Skipped = append(result.Skipped, entry.Src)
			continue
		}
		result.Copied = append(result.Copied, entry.Dest)
	}
	if len(result.Copied) == 0 {
		return result, &NoFilesFoundError{Manifest: m.Name}
	}
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintln(inst.out, messages.InstallSuccessSummary)
	return result, nil
}

func newInstaller(opts Options) (*installer, error) {
	if opts.PackageRoot == "" {
		return nil, fmt.Errorf(messages.InstallPackageRootRequired)
	}
	if opts.TargetRoot == "" {
		return nil, fmt.Errorf(messages.InstallTargetRootRequired)
	}
	if !filepath.IsAbs(opts.PackageRoot) {
		return nil, fmt.Errorf(messages.InstallRootNotAbsFmt, "package root", opts.PackageRoot)
	}
	if !filepath.IsAbs(opts.TargetRoot) {
		return nil, fmt.Errorf(messages.InstallRootNotAbsFmt, "target root", opts.TargetRoot)
	}
	if opts.System == nil {
		return nil, fmt.Errorf(messages.InstallSystemRequired)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &installer{
		packageRoot: opts.PackageRoot,
		targetRoot:  opts.TargetRoot,
		sys:         opts.System,
		out:         out,
		verbose:     opts.Verbose,
		check:       newColor(opts.Color, color.FgGreen),
		faint:       newColor(opts.Color, color.Faint),
	}, nil
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// installEntry copies a single entry. It reports false when the source is missing.
func (inst *installer) installEntry(entry manifest.Entry) (bool, error) {
	src := entry.SrcPath(inst.packageRoot)
	dest := entry.DestPath(inst.targetRoot)

	info, err := inst.sys.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			inst.reportSkipped(entry)
			return false, nil
		}
		return false, &EntryError{Entry: entry, Op: messages.InstallOpStat, Path: src, Err: err}
	}
	if info.IsDir() {
		return false, &EntryError{Entry: entry, Op: messages.InstallOpRead, Path: src, Err: ErrSourceIsDir}
	}

	if err := inst.sys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, &EntryError{Entry: entry, Op: messages.InstallOpMkdir, Path: dest, Err: err}
	}
	data, err := inst.sys.ReadFile(src)
	if err != nil {
		return false, &EntryError{Entry: entry, Op: messages.InstallOpRead, Path: src, Err: err}
	}
	if err := inst.sys.WriteFileAtomic(dest, data, filePerm(info)); err != nil {
		return false, &EntryError{Entry: entry, Op: messages.InstallOpWrite, Path: dest, Err: err}
	}
	_, _ = fmt.Fprintf(inst.out, messages.InstallCopiedFmt, inst.check.Sprint(messages.InstallCheckGlyph), entry.Dest)
	return true, nil
}

func (inst *installer) reportSkipped(entry manifest.Entry) {
	if !inst.verbose {
		return
	}
	_, _ = inst.faint.Fprintf(inst.out, messages.InstallSkippedFmt, entry.Src)
}

// filePerm keeps the source permission bits, falling back to 0644 when the
// source reports none.
func filePerm(info os.FileInfo) os.FileMode {
	perm := info.Mode().Perm()
	if perm == 0 {
		return 0o644
	}
	return perm
}
