// Package publish renders every page of a site and writes the result
// to a storage backend.
//
// Two backends ship with the package: DiskStore writes an output
// directory suitable for any static file host, and S3Store uploads to
// an S3 bucket (or any S3-compatible endpoint). Custom backends
// implement the three-method Store interface.
//
//	store, _ := publish.NewDiskStore("dist")
//	p := publish.New(store, publish.Options{Prune: true})
//	result, err := p.Publish(ctx, site)
package publish
