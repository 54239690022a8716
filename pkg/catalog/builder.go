// Copyright © 2018 One Concern

package catalog

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	units "github.com/docker/go-units"
	"github.com/oneconcern/xcassets/pkg/storage"
	"github.com/oneconcern/xcassets/pkg/storage/localfs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder converts a flat directory of images into an asset catalog
type Builder struct {
	source      string
	destination string
	overwrite   bool

	fs afero.Fs
	l  *zap.Logger
}

// Result summarizes a successful run
type Result struct {
	// Images holds the source file names, in processing order
	Images []string
	// Containers holds the image set names created in the destination
	Containers  []string
	BytesCopied int64
}

// New creates a builder reading images from source and writing the catalog to destination.
//
// The destination may not be the source, nor be nested in it (and vice versa),
// since it is removed on every run.
func New(source, destination string, opts ...Option) (*Builder, error) {
	if source == "" || destination == "" {
		return nil, errors.Wrap(ErrInvalidPaths, "source and destination are required")
	}
	src, err := filepath.Abs(source)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPaths, "source %q: %v", source, err)
	}
	dst, err := filepath.Abs(destination)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPaths, "destination %q: %v", destination, err)
	}
	if isWithin(src, dst) || isWithin(dst, src) {
		return nil, errors.Wrapf(ErrInvalidPaths, "source %q and destination %q overlap", src, dst)
	}

	b := &Builder{
		source:      src,
		destination: dst,
		overwrite:   true,
		fs:          afero.NewOsFs(),
		l:           zap.NewNop(),
	}
	for _, apply := range opts {
		apply(b)
	}
	return b, nil
}

// isWithin tells if child is parent or lives under it
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Source directory of the images
func (b *Builder) Source() string { return b.source }

// Destination directory of the catalog
func (b *Builder) Destination() string { return b.destination }

// Build runs the migration: the destination is reset, then one image set is created per image.
//
// The first error aborts the run. The destination is not cleaned up on failure.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	var res Result

	images, err := b.listImages()
	if err != nil {
		return res, err
	}

	store, err := b.reset(ctx)
	if err != nil {
		return res, err
	}

	if err = b.putDescriptor(ctx, store, DescriptorFile, NewRootDescriptor()); err != nil {
		return res, err
	}

	for _, image := range images {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		container, written, err := b.addImage(ctx, store, image)
		if err != nil {
			return res, err
		}
		res.Images = append(res.Images, image.Name())
		res.Containers = append(res.Containers, container)
		res.BytesCopied += written
	}

	b.l.Info("catalog built",
		zap.String("destination", b.destination),
		zap.Int("images", len(res.Images)),
		zap.String("copied", units.HumanSize(float64(res.BytesCopied))),
	)
	return res, nil
}

// listImages returns the image files directly under the source, sorted by name
func (b *Builder) listImages() ([]os.FileInfo, error) {
	fi, err := b.fs.Stat(b.source)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceNotFound, "%q: %v", b.source, err)
	}
	if !fi.IsDir() {
		return nil, errors.Wrapf(ErrSourceNotFound, "%q is not a directory", b.source)
	}
	entries, err := afero.ReadDir(b.fs, b.source)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceNotFound, "listing %q: %v", b.source, err)
	}

	images := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !IsImage(entry.Name()) {
			b.l.Debug("skipping", zap.String("name", entry.Name()))
			continue
		}
		if entry.Mode()&os.ModeSymlink != 0 {
			// listings do not follow links: select the link when it points to a file
			target, err := b.fs.Stat(filepath.Join(b.source, entry.Name()))
			if err != nil {
				return nil, errors.Wrapf(ErrImageUnreadable, "following link %q: %v", entry.Name(), err)
			}
			entry = target
		}
		if !entry.Mode().IsRegular() {
			b.l.Debug("skipping", zap.String("name", entry.Name()), zap.Stringer("mode", entry.Mode()))
			continue
		}
		images = append(images, entry)
	}
	return images, nil
}

// reset empties the destination, creating it when missing
func (b *Builder) reset(ctx context.Context) (storage.Store, error) {
	fi, err := b.fs.Stat(b.destination)
	exists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrDestination, "%q: %v", b.destination, err)
	}
	if exists && !b.overwrite {
		return nil, errors.Wrapf(ErrDestinationExists, "%q", b.destination)
	}
	if exists && !fi.IsDir() {
		b.l.Debug("removing destination file", zap.String("destination", b.destination))
		if err = b.fs.Remove(b.destination); err != nil {
			return nil, errors.Wrapf(ErrDestination, "removing %q: %v", b.destination, err)
		}
		exists = false
	}

	store := localfs.New(afero.NewBasePathFs(b.fs, b.destination))
	if exists {
		b.l.Debug("clearing destination", zap.Stringer("store", store))
		if err = store.Clear(ctx); err != nil {
			return nil, errors.Wrapf(ErrDestination, "clearing %q: %v", b.destination, err)
		}
		return store, nil
	}
	if err = b.fs.MkdirAll(b.destination, 0755); err != nil {
		return nil, errors.Wrapf(ErrDestination, "creating %q: %v", b.destination, err)
	}
	return store, nil
}

// addImage creates the image set for one image: copy of the file and descriptor
func (b *Builder) addImage(ctx context.Context, store storage.Store, image os.FileInfo) (string, int64, error) {
	name := image.Name()
	container := ContainerName(name)
	b.l.Debug("creating image set", zap.String("image", name), zap.String("container", container))

	if err := store.Mkdir(ctx, container); err != nil {
		if err == storage.ErrExists {
			return "", 0, errors.Wrapf(ErrContainerExists, "%q for image %q", container, name)
		}
		return "", 0, errors.Wrapf(ErrDestination, "%v", err)
	}

	key := path.Join(container, name)
	written, err := b.copyImage(ctx, store, filepath.Join(b.source, name), key)
	if err != nil {
		return "", 0, err
	}
	if err = store.Chattr(ctx, key, image.Mode(), image.ModTime()); err != nil {
		return "", 0, errors.Wrapf(ErrDestination, "%v", err)
	}

	if err = b.putDescriptor(ctx, store, path.Join(container, DescriptorFile), NewImageDescriptor(name)); err != nil {
		return "", 0, err
	}
	return container, written, nil
}

func (b *Builder) copyImage(ctx context.Context, store storage.Store, src, key string) (written int64, err error) {
	f, err := b.fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(ErrImageUnreadable, "opening %q: %v", src, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if written, err = store.Put(ctx, key, f, storage.NoOverWrite); err != nil {
		return written, errors.Wrapf(ErrDestination, "copying %q to %q: %v", src, key, err)
	}
	return written, nil
}

func (b *Builder) putDescriptor(ctx context.Context, store storage.Store, key string, descriptor interface{}) error {
	data, err := Encode(descriptor)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	if _, err = store.Put(ctx, key, bytes.NewReader(data), storage.OverWrite); err != nil {
		return errors.Wrapf(ErrDestination, "writing %q: %v", key, err)
	}
	return nil
}
