// Copyright © 2018 One Concern

// Package storage provides the interface used to write catalog objects.
//
// Keys are slash separated paths relative to the root of the store.
// The only backend is the local file system (see package localfs).
package storage
