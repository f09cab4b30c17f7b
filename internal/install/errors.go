package install

import (
	"errors"
	"fmt"

	"github.com/avisek-yorkie/cursor-rules/internal/manifest"
	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

// ErrSourceIsDir is wrapped by the EntryError returned when a manifest source
// exists but is a directory.
var ErrSourceIsDir = errors.New(messages.InstallSourceIsDir)

// NoFilesFoundError reports that none of the manifest sources existed, so
// nothing was installed.
type NoFilesFoundError struct {
	Manifest string
}

func (e *NoFilesFoundError) Error() string {
	return messages.InstallNoFilesFound
}

// EntryError reports an I/O failure while installing a single manifest entry.
// The run stops at the entry that failed.
type EntryError struct {
	Entry manifest.Entry
	Op    string
	Path  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf(messages.InstallEntryFailedFmt, e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
