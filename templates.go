package apiref

import (
	"io/fs"

	"github.com/goliatone/go-apiref/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedAssets exposes the default stylesheet so Go applications can serve
// it next to themed pages.
//
// Typical mount:
//
//	mux.Handle("/apiref/",
//	  http.StripPrefix("/apiref/",
//	    http.FileServerFS(apiref.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return html.AssetsFS()
}
