/*
Package appicon draws the Native Translator app icon and exports it as an iOS asset catalog icon set.

The icon is drawn once at a reference resolution (1024px by default): a vertical blue gradient,
two white badges holding a latin and a CJK glyph, an arrow between them and a small globe.
The reference image is then downscaled to every slot of the icon set and a Contents.json
manifest describing the slots is written next to the images.

The package provides a command line interface. To check the supported flags type:

	$ appicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/nativetranslator/appicon"
	)

	func main() {
		c := appicon.NewComposer()
		img, err := c.Compose(appicon.ReferenceSize)
		if err != nil {
			log.Fatal(err)
		}

		e := &appicon.Exporter{Filter: appicon.Lanczos}
		if _, err := e.ExportAll(img, appicon.DefaultTargets, "AppIcon.appiconset"); err != nil {
			log.Fatalf("Error exporting the icon set: %v", err)
		}
	}
*/
package appicon
