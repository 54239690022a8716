/*
Package xcassets provides CLI tooling to migrate image folders to asset catalogs.

The xcassets command turns a flat folder of png, jpg and jpeg images into an
Xcode asset catalog, with one image set per image. See package
github.com/oneconcern/xcassets/pkg/catalog for the library.
*/
package xcassets
