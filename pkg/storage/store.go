// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"os"
	"time"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNotFound     errString = "not found"
	ErrNotSupported errString = "not supported"
	ErrExists       errString = "exists already"
)

const (
	// OverWrite replaces an existing object on Put
	OverWrite = false
	// NoOverWrite makes Put fail with ErrExists when the object is already there
	NoOverWrite = true
)

// Store implementations know how to write catalog entries to a tree of objects.
//
// Put reports the number of bytes written.
//
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader, bool) (int64, error)
	Mkdir(context.Context, string) error
	Chattr(context.Context, string, os.FileMode, time.Time) error
	Keys(context.Context) ([]string, error)
	Clear(context.Context) error
}
