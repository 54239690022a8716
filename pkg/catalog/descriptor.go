// Copyright © 2018 One Concern

package catalog

import (
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	// DescriptorFile is the name of the descriptor found at the root of the catalog and in every image set
	DescriptorFile = "Contents.json"

	// ContainerExt is appended to the image base name to name its image set
	ContainerExt = ".imageset"

	author      = "xcode"
	version     = 1
	idiom       = "universal"
	indentation = "  "
)

// Scales supplied for every image: only the first one references a file.
var Scales = []string{"1x", "2x", "3x"}

var imageExts = []string{".png", ".jpg", ".jpeg"}

// Python-like encoding: no HTML escaping, fields in declaration order.
var descriptorJSON = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Info identifies the tool which produced a descriptor
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// ImageVariant is one display density slot of an image set.
// A variant without a file name is a placeholder.
type ImageVariant struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

// RootDescriptor is the Contents.json found at the root of the catalog
type RootDescriptor struct {
	Info Info `json:"info"`
}

// ImageDescriptor is the Contents.json found in an image set
type ImageDescriptor struct {
	Images []ImageVariant `json:"images"`
	Info   Info           `json:"info"`
}

// Filename returns the file supplied for the 1x slot, if any
func (d ImageDescriptor) Filename() string {
	for _, v := range d.Images {
		if v.Scale == Scales[0] {
			return v.Filename
		}
	}
	return ""
}

func newInfo() Info {
	return Info{Author: author, Version: version}
}

// NewRootDescriptor builds the catalog root descriptor
func NewRootDescriptor() RootDescriptor {
	return RootDescriptor{Info: newInfo()}
}

// NewImageDescriptor builds the descriptor of an image set holding filename as its 1x variant
func NewImageDescriptor(filename string) ImageDescriptor {
	images := make([]ImageVariant, 0, len(Scales))
	for i, scale := range Scales {
		v := ImageVariant{Idiom: idiom, Scale: scale}
		if i == 0 {
			v.Filename = filename
		}
		images = append(images, v)
	}
	return ImageDescriptor{
		Images: images,
		Info:   newInfo(),
	}
}

// Encode renders a descriptor as JSON indented with 2 spaces, without a trailing new line
func Encode(v interface{}) ([]byte, error) {
	return descriptorJSON.MarshalIndent(v, "", indentation)
}

// Decode parses a descriptor
func Decode(data []byte, v interface{}) error {
	return descriptorJSON.Unmarshal(data, v)
}

// IsImage tells if a file name carries one of the supported image extensions, regardless of case
func IsImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ContainerName yields the image set directory name for an image file.
//
// Leading dots do not start an extension: ".png" maps to ".png.imageset".
func ContainerName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.TrimLeft(base, ".") == "" {
		base = name
	}
	return base + ContainerExt
}
