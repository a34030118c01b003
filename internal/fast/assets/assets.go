// Package assets embeds the Fast design system stylesheets into the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed css/*.css
var files embed.FS

// CSS is rooted at the stylesheet directory, so entries are plain file names
// such as "fast_root.css".
var CSS fs.FS = mustSub(files, "css")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
