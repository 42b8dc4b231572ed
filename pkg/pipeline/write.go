package pipeline

import (
	"os"
	"path/filepath"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

// WriteAtomic writes data to path through a temporary file in the same
// directory, so readers never observe a half-written artifact. The temporary
// file is removed on any failure.
func WriteAtomic(path string, data []byte) error {
	tmp, err := stageFile(path, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "rename to %s", path)
	}
	return nil
}

// stageFile writes data to a synced temporary file next to path and returns
// its name. Nothing is left behind on failure.
func stageFile(path string, data []byte) (name string, err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "create temp file in %s", dir)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return "", apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err = tmp.Sync(); err != nil {
		return "", apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "sync %s", path)
	}
	if err = tmp.Close(); err != nil {
		return "", apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "close %s", path)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "chmod %s", path)
	}
	return tmp.Name(), nil
}

// stagedFile is an artifact written to a temporary file, waiting to be
// renamed over its target.
type stagedFile struct {
	path   string
	tmp    string
	backup string // previous content of path, moved aside during commit
}

// batch stages several artifacts and replaces their targets together. Until
// commit succeeds, every target keeps the content it had before.
type batch struct {
	files []stagedFile
}

// stage writes data to a temporary file for path.
func (b *batch) stage(path string, data []byte) error {
	tmp, err := stageFile(path, data)
	if err != nil {
		return err
	}
	b.files = append(b.files, stagedFile{path: path, tmp: tmp})
	return nil
}

// commit renames every staged file into place. If any rename fails, targets
// already replaced get their previous content back and the error is returned.
func (b *batch) commit() error {
	for i := range b.files {
		f := &b.files[i]
		if info, err := os.Lstat(f.path); err == nil && info.Mode().IsRegular() {
			f.backup = f.tmp + ".bak"
			if err := os.Rename(f.path, f.backup); err != nil {
				f.backup = ""
				b.restore(i)
				return apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "move aside %s", f.path)
			}
		}
		if err := os.Rename(f.tmp, f.path); err != nil {
			b.restore(i)
			return apgerr.Wrap(apgerr.ErrCodeWriteFailed, err, "rename to %s", f.path)
		}
	}
	for _, f := range b.files {
		if f.backup != "" {
			_ = os.Remove(f.backup)
		}
	}
	return nil
}

// restore undoes a commit that failed at index failed.
func (b *batch) restore(failed int) {
	for i := len(b.files) - 1; i >= 0; i-- {
		f := b.files[i]
		switch {
		case i < failed:
			if f.backup != "" {
				_ = os.Rename(f.backup, f.path)
			} else {
				_ = os.Remove(f.path)
			}
		case i == failed:
			_ = os.Remove(f.tmp)
			if f.backup != "" {
				_ = os.Rename(f.backup, f.path)
			}
		default:
			_ = os.Remove(f.tmp)
		}
	}
}

// discard removes every staged temporary file.
func (b *batch) discard() {
	for _, f := range b.files {
		_ = os.Remove(f.tmp)
	}
	b.files = nil
}
