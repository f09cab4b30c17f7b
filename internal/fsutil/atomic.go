// Package fsutil holds small filesystem helpers shared by the installer.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

var osCreateTemp = os.CreateTemp

// WriteFileAtomic writes data to filename by writing a temp file in the same
// directory and renaming it into place. An existing file is replaced.
// When filename is a symlink the file it points to is replaced and the link
// is kept. The parent directory must already exist.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	target, err := resolveWriteTarget(filename)
	if err != nil {
		return fmt.Errorf(messages.FsutilResolveLinkFmt, filename, err)
	}
	dir := filepath.Dir(target)
	tmp, err := osCreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, filename, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, filename, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFmt, filename, err)
	}
	committed = true
	return nil
}

// resolveWriteTarget returns the path a write to filename should land on.
// Symlinks are followed, including dangling ones, which resolve to the path
// they name.
func resolveWriteTarget(filename string) (string, error) {
	info, err := os.Lstat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return filename, nil
		}
		return "", err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return filename, nil
	}
	resolved, err := filepath.EvalSymlinks(filename)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	link, err := os.Readlink(filename)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(filename), link)
	}
	return link, nil
}
