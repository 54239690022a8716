// Copyright © 2018 One Concern

package catalog

type errString string

func (e errString) Error() string { return string(e) }

const (
	// ErrSourceNotFound is returned when the source directory is missing or cannot be listed
	ErrSourceNotFound errString = "source not found"

	// ErrImageUnreadable is returned when an image listed in the source cannot be opened
	ErrImageUnreadable errString = "cannot read image"

	// ErrDestination is returned when the destination cannot be reset or written to
	ErrDestination errString = "cannot write destination"

	// ErrDestinationExists is returned when the destination is present and overwriting it is not allowed
	ErrDestinationExists errString = "destination exists already"

	// ErrContainerExists is returned when two images map to the same image set,
	// e.g. logo.png and logo.jpg
	ErrContainerExists errString = "image set exists already"

	// ErrCatalogNotFound is returned when inspecting a catalog which does not exist
	ErrCatalogNotFound errString = "catalog not found"

	// ErrInvalidDescriptor is returned when a Contents.json file cannot be decoded
	ErrInvalidDescriptor errString = "invalid descriptor"

	// ErrInvalidPaths is returned when the source and destination cannot be used together
	ErrInvalidPaths errString = "invalid source or destination"
)
