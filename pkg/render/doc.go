// Package render delivers dom trees to their destinations.
//
// The dom package owns the markup algorithm; this package owns the
// plumbing around it: rendering to strings and writers, and serving
// documents over HTTP with incremental flushing so large pages reach the
// client while they are still being serialized.
//
// To render a tree to a string:
//
//	html, err := render.String(doc)
//
// To stream a tree to an http.ResponseWriter with flushing:
//
//	http.Handle("/", render.Handler(func(r *http.Request) dom.Node {
//	    return buildPage(r)
//	}))
package render
