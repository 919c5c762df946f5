package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StagingDirName is the subdirectory of the upload dir holding unpublished files.
const StagingDirName = ".staging"

// AvatarStore keeps profile pictures as flat files under one directory.
// Uploads land in a staging subdirectory first and are renamed into place
// once the owning row has been updated.
type AvatarStore struct {
	dir     string
	staging string
}

// NewAvatarStore creates dir and its staging subdirectory if needed.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	staging := filepath.Join(dir, StagingDirName)
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory %s: %w", dir, err)
	}
	return &AvatarStore{dir: dir, staging: staging}, nil
}

// Dir is the directory served under /uploads.
func (s *AvatarStore) Dir() string { return s.dir }

// Path returns the on-disk location of a committed avatar.
func (s *AvatarStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// StagedFile is an upload that has been written to disk but not yet published.
type StagedFile struct {
	// Name is the final file name, e.g. profile-<uuid>.png.
	Name  string
	path  string
	store *AvatarStore
}

// Stage streams src into a new staging file named after originalName's extension.
func (s *AvatarStore) Stage(src io.Reader, originalName string) (*StagedFile, error) {
	name := "profile-" + uuid.New().String() + cleanExt(originalName)
	path := filepath.Join(s.staging, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write staging file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to flush staging file: %w", err)
	}
	return &StagedFile{Name: name, path: path, store: s}, nil
}

// Commit moves the staged file into the served directory.
func (f *StagedFile) Commit() error {
	if err := os.Rename(f.path, f.store.Path(f.Name)); err != nil {
		return fmt.Errorf("failed to publish %s: %w", f.Name, err)
	}
	return nil
}

// Discard deletes the staged file. Discarding twice is not an error.
func (f *StagedFile) Discard() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to discard %s: %w", f.Name, err)
	}
	return nil
}

// Remove deletes a committed avatar. A file that is already gone is not an error.
func (s *AvatarStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove avatar %s: %w", name, err)
	}
	return nil
}

// cleanExt keeps the lowercased extension of name if it is short and alphanumeric.
func cleanExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
