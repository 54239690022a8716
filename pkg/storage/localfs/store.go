// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oneconcern/xcassets/pkg/storage"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// New creates a new local file system backed store.
//
// Keys are resolved relative to the root of fs: callers usually hand over an
// afero.BasePathFs rooted at the catalog directory.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), ".")
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {

	fi, err := l.fs.Stat(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, storage.ErrNotFound
	}
	return l.fs.Open(key)
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader, exclusive bool) (written int64, err error) {
	dir := filepath.Dir(key)
	if dir != "" && dir != "." {
		if err = l.fs.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("ensuring directories for %q: %v", key, err)
		}
	}
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if exclusive {
		flag |= os.O_EXCL
	}
	target, err := l.fs.OpenFile(key, flag, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, storage.ErrExists
		}
		return 0, fmt.Errorf("create record for %q: %v", key, err)
	}
	defer func() {
		err = multierr.Append(err, target.Close())
	}()

	if written, err = io.Copy(target, source); err != nil {
		return written, fmt.Errorf("write record for %q: %v", key, err)
	}
	return written, nil
}

func (l *localFS) Mkdir(ctx context.Context, key string) error {
	if err := l.fs.Mkdir(key, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return storage.ErrExists
		}
		return fmt.Errorf("creating directory %q: %v", key, err)
	}
	return nil
}

// Chattr sets the permission bits and the access/modification times of an object.
func (l *localFS) Chattr(ctx context.Context, key string, mode os.FileMode, mtime time.Time) error {
	if err := l.fs.Chmod(key, mode.Perm()); err != nil {
		return fmt.Errorf("chmod %q: %v", key, err)
	}
	if err := l.fs.Chtimes(key, mtime, mtime); err != nil {
		return fmt.Errorf("chtimes %q: %v", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, filepath.ToSlash(path))
		return nil
	})
	if e != nil {
		return nil, e
	}
	sort.Strings(res)
	return res, nil
}

func (l *localFS) Clear(ctx context.Context) error {
	entries, err := afero.ReadDir(l.fs, ".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := l.fs.RemoveAll(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
