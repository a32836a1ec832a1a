// Package preview runs a local development server for a site.
//
// The server renders pages from the in-memory document trees on every
// request, so edits made through the element views show up on the next
// refresh without a build step. When watch paths are configured, a
// polling watcher triggers the rebuild hook and connected browsers are
// refreshed over a WebSocket live-reload channel.
//
//	srv := preview.NewServer(site, preview.Options{
//	    Addr:    "127.0.0.1:8000",
//	    Watch:   []string{"content"},
//	    Rebuild: buildSite,
//	})
//	srv.Start(ctx)
package preview
