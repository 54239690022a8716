// Copyright © 2018 One Concern

/*
Package catalog builds an asset catalog (.xcassets) from a flat directory of images.

Each image found in the source directory ends up in its own image set:

	<destination>/
	  Contents.json
	  icon.imageset/
	    Contents.json
	    icon.png

The destination is owned by the builder: any previous content is removed
before the catalog is written.
*/
package catalog
