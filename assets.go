package formcore

import (
	"io/fs"

	"github.com/goliatone/go-formcore/pkg/renderers/html"
)

// StylesheetName is the file name of the bundled stylesheet inside AssetsFS.
const StylesheetName = html.StylesheetName

// AssetsFS exposes the static assets the HTML renderer links against when a
// theme routes styling through an asset prefix. Mount it under that prefix:
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(formcore.AssetsFS())))
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
