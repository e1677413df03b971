package kubeconfig

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/common-fate/clio"
)

// BackupSuffix is appended to a kubeconfig path to name its backup.
const BackupSuffix = ".bak"

// BackupPath returns where Backup copies the file at path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Load loads a kubeconfig file from the given path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load kubeconfig: file %q: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load kubeconfig: failed to read file %q: %w: %w", path, ErrIO, err)
	}

	c := New()
	if err := c.Unmarshal(b); err != nil {
		return nil, fmt.Errorf("load kubeconfig: config %q invalid: %w", path, err)
	}

	clio.Debugw("loaded kubeconfig", "path", path, "keys", len(c))
	return c, nil
}

// Save writes the kubeconfig to path, replacing the previous file in a
// single rename so readers never observe a partially written document.
// The permissions of an existing file are kept, and when path is a symlink
// the file it points to is replaced.
func Save(c Config, path string) error {
	b, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("save kubeconfig: %w", err)
	}

	// write through a symlinked kubeconfig instead of replacing the link
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := fs.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save kubeconfig: %w: %w", ErrIO, err)
	}
	// after a successful rename this is a no-op
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("save kubeconfig: writing %q: %w: %w", tmp.Name(), ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("save kubeconfig: %w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save kubeconfig: %w: %w", ErrIO, err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("save kubeconfig: %w: %w", ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save kubeconfig: replacing %q: %w: %w", path, ErrIO, err)
	}
	return nil
}

// Backup copies the file at path to BackupPath(path), unless a backup is
// already there. It reports whether a new backup was written.
func Backup(path string) (bool, error) {
	backupPath := BackupPath(path)
	if fileExists(backupPath) {
		clio.Debugw("backup already exists", "path", backupPath)
		return false, nil
	}

	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("backup kubeconfig: file %q: %w", path, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("backup kubeconfig: %w: %w", ErrIO, err)
	}
	defer src.Close()

	mode := fs.FileMode(0600)
	if info, err := src.Stat(); err == nil {
		mode = info.Mode().Perm()
	}

	// O_EXCL keeps an existing backup intact even if it was created after the check above
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("backup kubeconfig: %w: %w", ErrIO, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return false, fmt.Errorf("backup kubeconfig: copying to %q: %w: %w", backupPath, ErrIO, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return false, fmt.Errorf("backup kubeconfig: %w: %w", ErrIO, err)
	}
	return true, nil
}

func fileExists(filename string) bool {
	_, err := os.Lstat(filename)
	return err == nil
}
