// Copyright © 2018 One Concern

package catalog

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option to configure the catalog builder
type Option func(*Builder)

// Fs specifies the file system holding both the source and the destination.
//
// Defaults to the OS file system.
func Fs(fs afero.Fs) Option {
	return func(b *Builder) {
		if fs != nil {
			b.fs = fs
		}
	}
}

// Logger sets the logger. Defaults to no logging.
func Logger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.l = l
		}
	}
}

// Overwrite tells the builder if an existing destination may be wiped.
// When false and the destination exists, Build fails with ErrDestinationExists.
//
// Defaults to true.
func Overwrite(enabled bool) Option {
	return func(b *Builder) {
		b.overwrite = enabled
	}
}
