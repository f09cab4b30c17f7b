// Package manifest defines the ordered list of files the installer copies
// and the catalog of built-in install variants.
package manifest

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

// Entry maps one file in the package root to its location in the target root.
// Both paths are slash-separated and relative.
type Entry struct {
	Src  string `toml:"src"`
	Dest string `toml:"dest"`
}

// SrcPath returns the absolute source path under packageRoot.
func (e Entry) SrcPath(packageRoot string) string {
	return filepath.Join(packageRoot, filepath.FromSlash(e.Src))
}

// DestPath returns the absolute destination path under targetRoot.
func (e Entry) DestPath(targetRoot string) string {
	return filepath.Join(targetRoot, filepath.FromSlash(e.Dest))
}

// Manifest is a named, ordered list of entries. Entry order is the copy order.
type Manifest struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Entries     []Entry `toml:"entries"`
}

// Clone returns a copy that shares no backing storage with m.
func (m Manifest) Clone() Manifest {
	m.Entries = slices.Clone(m.Entries)
	return m
}

// Validate checks that every entry is a relative path inside its root and
// that no two entries write the same destination.
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf(messages.ManifestNameRequired)
	}
	seen := make(map[string]struct{}, len(m.Entries))
	for i, entry := range m.Entries {
		if strings.TrimSpace(entry.Src) == "" {
			return fmt.Errorf(messages.ManifestEntrySrcRequiredFmt, m.Name, i)
		}
		if strings.TrimSpace(entry.Dest) == "" {
			return fmt.Errorf(messages.ManifestEntryDstRequiredFmt, m.Name, i)
		}
		if err := checkRelative(m.Name, i, entry.Src); err != nil {
			return err
		}
		if err := checkRelative(m.Name, i, entry.Dest); err != nil {
			return err
		}
		dest := path.Clean(entry.Dest)
		if _, ok := seen[dest]; ok {
			return fmt.Errorf(messages.ManifestDuplicateDestFmt, m.Name, entry.Dest)
		}
		seen[dest] = struct{}{}
	}
	return nil
}

func checkRelative(name string, index int, p string) error {
	if path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return fmt.Errorf(messages.ManifestEntryAbsPathFmt, name, index, p)
	}
	cleaned := path.Clean(filepath.ToSlash(p))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf(messages.ManifestEntryEscapesFmt, name, index, p)
	}
	return nil
}
