// Package store persists entry groups as a single JSON document.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	json "github.com/goccy/go-json"
)

var (
	// ErrNoPath is returned when load or save is attempted without a path.
	ErrNoPath = errors.New("no entry file path specified")
	// ErrMalformed wraps decode failures of an existing entry file.
	ErrMalformed = errors.New("malformed entry file")
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Load reads every group stored at path. A missing file, or one whose parent
// is not a directory, yields no groups and no error.
func Load(path string) ([]catalog.Group, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if missing(err) {
			events.Store.Load(path, 0, true)
			return nil, nil
		}
		err = fmt.Errorf("read %s: %w", path, err)
		events.Store.Error(path, err)
		return nil, err
	}
	groups, err := Decode(data)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		events.Store.Error(path, err)
		return nil, err
	}
	events.Store.Load(path, len(groups), false)
	return groups, nil
}

// missing reports read errors that mean the file is not there, including a
// path that runs through a regular file.
func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Save writes groups to path, creating parent directories first. The file is
// replaced atomically so a reader never observes a partial document.
func Save(path string, groups []catalog.Group) error {
	if path == "" {
		return ErrNoPath
	}
	data, err := Encode(groups)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		events.Store.Error(path, err)
		return err
	}
	events.Store.Save(path, len(groups))
	return nil
}

// Decode parses a JSON array of groups.
func Decode(data []byte) ([]catalog.Group, error) {
	var groups []catalog.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return groups, nil
}

// Encode renders groups as indented JSON. A nil slice is written as an empty
// array.
func Encode(groups []catalog.Group) ([]byte, error) {
	if groups == nil {
		groups = []catalog.Group{}
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode entry groups: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Chmod(tmp, filePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	ok = true
	return nil
}
