package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// ReplaceDir rebuilds dir from scratch. fill populates a staging directory next
// to dir; once it succeeds the old dir is removed and the staging directory takes
// its place. The staging directory never outlives the call.
func ReplaceDir(dir string, fill func(staging string) error) (err error) {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", parent, err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove staging directory: %w", rmErr)
		}
	}()

	// MkdirTemp creates 0700; match regular output directories
	if err := os.Chmod(staging, 0755); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", staging, err)
	}

	if err := fill(staging); err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	if err := os.Rename(staging, dir); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", dir, err)
	}
	return nil
}

// ResetDir removes dir and recreates it empty
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// CopyTree recursively copies src into dst, preserving file modes.
// Directories that already exist in dst are merged into.
func CopyTree(src, dst string) error {
	err := copy.Copy(src, dst, copy.Options{
		OnSymlink:         func(string) copy.SymlinkAction { return copy.Deep },
		PermissionControl: copy.PerservePermission,
	})
	if err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}
