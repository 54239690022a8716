// Copyright © 2018 One Concern

package catalog

import (
	"context"
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"github.com/oneconcern/xcassets/pkg/storage"
	"github.com/oneconcern/xcassets/pkg/storage/localfs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Inspection reports the findings of Inspect on an existing catalog
type Inspection struct {
	Containers []string
	Problems   []string
}

// OK tells if no problem was found
func (i Inspection) OK() bool { return len(i.Problems) == 0 }

// Inspect checks the layout of a catalog previously produced by a Builder.
//
// Every image set must carry a descriptor with a 1x file, and this file must be
// present next to it. Files at the top level other than the root descriptor are
// reported as unexpected. Layout problems are reported in the Inspection, while
// I/O failures are returned as errors.
func Inspect(ctx context.Context, fs afero.Fs, destination string) (Inspection, error) {
	var res Inspection
	if fs == nil {
		fs = afero.NewOsFs()
	}
	ok, err := afero.DirExists(fs, destination)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, errors.Wrapf(ErrCatalogNotFound, "%q", destination)
	}
	store := localfs.New(afero.NewBasePathFs(fs, destination))

	var root RootDescriptor
	if err = getDescriptor(ctx, store, DescriptorFile, &root); err != nil {
		problem, fatal := descriptorProblem(err)
		if fatal {
			return res, err
		}
		res.Problems = append(res.Problems, "root: "+problem)
	} else if root.Info != newInfo() {
		res.Problems = append(res.Problems, fmt.Sprintf("root: unexpected info %+v", root.Info))
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		return res, err
	}
	files := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		files[key] = struct{}{}
		if !strings.Contains(key, "/") && key != DescriptorFile {
			res.Problems = append(res.Problems, key+": unexpected file")
		}
	}

	entries, err := afero.ReadDir(fs, destination)
	if err != nil {
		return res, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ContainerExt) {
			continue
		}
		container := entry.Name()
		res.Containers = append(res.Containers, container)

		var desc ImageDescriptor
		if err = getDescriptor(ctx, store, path.Join(container, DescriptorFile), &desc); err != nil {
			problem, fatal := descriptorProblem(err)
			if fatal {
				return res, err
			}
			res.Problems = append(res.Problems, container+": "+problem)
			continue
		}

		filename := desc.Filename()
		if filename == "" {
			res.Problems = append(res.Problems, fmt.Sprintf("%s: no %s image", container, Scales[0]))
			continue
		}
		if _, has := files[path.Join(container, filename)]; !has {
			res.Problems = append(res.Problems, fmt.Sprintf("%s: missing image %s", container, filename))
		}
	}
	return res, nil
}

func getDescriptor(ctx context.Context, store storage.Store, key string, v interface{}) error {
	rdr, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	defer rdr.Close()

	data, err := ioutil.ReadAll(rdr)
	if err != nil {
		return errors.Wrapf(err, "reading %s", key)
	}
	if err = Decode(data, v); err != nil {
		return errors.Wrapf(ErrInvalidDescriptor, "decoding %s: %v", key, err)
	}
	return nil
}

// descriptorProblem turns a descriptor read failure into a layout problem, unless it is an I/O error
func descriptorProblem(err error) (string, bool) {
	switch errors.Cause(err) {
	case storage.ErrNotFound:
		return "missing " + DescriptorFile, false
	case ErrInvalidDescriptor:
		return "invalid " + DescriptorFile, false
	default:
		return "", true
	}
}
