// Package reference provides a small net/http component that serves a
// rendered API reference.
//
// The handler responds to GET and HEAD requests. Query parameters pick the
// output format (html or json), narrow routes by tag, method or path prefix
// and select a theme variant. Static assets for the HTML page are mounted
// next to the handler by RegisterRoutes.
package reference
