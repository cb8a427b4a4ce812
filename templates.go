package formcore

import (
	"io/fs"

	"github.com/goliatone/go-formcore/pkg/renderers/html"
)

// EmbeddedTemplates returns the page templates the HTML renderer ships with.
// Useful for callers that want to inspect or override the default markup.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
