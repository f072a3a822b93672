// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/gofrs/flock"
)

const lockSuffix = ".lock"

// WriteFile replaces path with data while holding an exclusive <path>.lock.
// The write is skipped when path already holds the same bytes, so unchanged
// outputs keep their modification time. It reports whether the file was written.
func WriteFile(path string, data []byte) (bool, error) {
	locker := flock.New(path + lockSuffix)
	if err := locker.Lock(); err != nil {
		return false, fmt.Errorf("bundle: lock '%s': %w", path, err)
	}
	defer func() { _ = locker.Unlock() }()

	same, err := unchanged(path, data)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return false, err
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}

	return true, nil
}

func unchanged(path string, data []byte) (bool, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !fi.Mode().IsRegular() || fi.Size() != int64(len(data)) {
		return false, nil
	}

	old, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	return xxhash.Sum64(old) == xxhash.Sum64(data), nil
}
